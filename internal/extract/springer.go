package extract

import (
	"regexp"
	"strings"

	"github.com/matsen/renamepdf/internal/bib"
	"github.com/matsen/renamepdf/internal/lines"
	"github.com/matsen/renamepdf/internal/normalize"
	"github.com/matsen/renamepdf/internal/textsource"
	"github.com/matsen/renamepdf/internal/venue"
)

// Springer journals: Natural Language & Linguistic Theory, Natural
// Language Semantics, Journal of Comparative Germanic Linguistics.
// Springer separates byline authors with a middle dot and sometimes
// embeds the DOI under a lowercase "doi" info key.

var (
	// "Nat Lang Linguist Theory (2019) 37:123–156"; OCR sometimes
	// renders the dash as a caret.
	springerHeaderRe = regexp.MustCompile(`.+?\((\d{4})\) (\d{1,2}):( ?)(\d{1,4})(–|\^)(\d{1,4})`)

	springerYearRe = regexp.MustCompile(`(\d{4})`)

	jcglSubjectRe  = regexp.MustCompile(`Journal of Comparative Germanic Linguistics (\d{1,3}): (\d{1,4})–(\d{1,4}), (\d{4})`)
	jcglFallbackRe = regexp.MustCompile(`J Comp German Linguistics \((\d{4})\) (\d{1,3}):(\d{1,4})–(\d{1,4})`)
)

func extractNLLT(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set("Natural Language & Linguistic Theory")
	rec.ShortJournalTitle = bib.Set("NLLT")
	return springerFill(doc, rec, venue.NLLT)
}

func extractNLS(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set("Natural Language Semantics")
	rec.ShortJournalTitle = bib.Set("Nat Lang Semantics")
	return springerFill(doc, rec, venue.NLS)
}

// springerFill handles the shared Springer first-page layout. The
// header line carries year/volume/pages; title and byline sit in the
// blocks above the "Received/Accepted" line. Early-access pages have
// no volume or pagination yet and fall back to the acceptance year.
func springerFill(doc *textsource.Document, rec *bib.Record, venueKey string) (*bib.Record, error) {
	info := doc.PageLines
	if len(info) > 10 {
		info = info[:10]
	}
	if len(info) == 0 {
		return nil, failf(venueKey, "masthead")
	}

	rec.Number = bib.Set("")
	rec.EID = bib.Set("")
	if doi, ok := metaField(doc, "doi"); ok {
		rec.DOI = bib.Set(doi)
	} else {
		rec.DOI = bib.Set(findDOI(doc.PageLines))
	}

	if vals := springerHeaderRe.FindStringSubmatch(info[0]); vals != nil {
		rec.Year = bib.Set(vals[1])
		rec.Volume = bib.Set(vals[2])
		rec.PageStart = bib.Set(vals[4])
		rec.PageEnd = bib.Set(vals[6])
	} else {
		// Early access: no volume assignment yet. Take the year from
		// the acceptance line.
		accepted, ok := lines.FirstContaining(doc.PageLines, "Accepted:")
		if !ok {
			accepted, ok = lines.FirstContaining(doc.PageLines, "Published online")
		}
		if !ok {
			return nil, failf(venueKey, "year")
		}
		// The line usually reads "Received: ... / Accepted: ...";
		// only the acceptance date carries the publication year.
		if i := strings.Index(accepted, "Accepted:"); i >= 0 {
			accepted = accepted[i:]
		}
		year, err := requireMatch(venueKey, "year", springerYearRe, accepted)
		if err != nil {
			return nil, err
		}
		rec.Year = bib.Set(year[1])
		rec.Volume = bib.Set("")
		rec.PageStart = bib.Set("")
		rec.PageEnd = bib.Set("")
	}

	receivedIdx := lines.IndexContaining(info, "Received")
	if receivedIdx < 2 {
		return nil, failf(venueKey, "author")
	}

	if title, ok := metaField(doc, "Title"); ok {
		rec.Title = bib.Set(title)
	} else {
		// Positional fallback needs the full masthead block above the
		// "Received" line.
		if receivedIdx < 4 {
			return nil, failf(venueKey, "title")
		}
		rec.Title = bib.Set(strings.TrimSpace(info[receivedIdx-4]))
	}

	byline := normalize.FixGlyphs(info[receivedIdx-2], nil)
	byline = strings.TrimSpace(regexp.MustCompile(`\d`).ReplaceAllString(byline, ""))
	rec.Authors = splitAuthors(byline, " · ")
	if len(rec.Authors) == 0 {
		return nil, failf(venueKey, "author")
	}

	return rec, nil
}

func extractJCGL(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set("The Journal of Comparative Germanic Linguistics")
	rec.ShortJournalTitle = bib.Set("JCGL")
	rec.Number = bib.Set("")
	rec.EID = bib.Set("")
	rec.DOI = bib.Set(findDOI(doc.PageLines))

	if vals := jcglSubjectRe.FindStringSubmatch(m.Signature); vals != nil {
		rec.Volume = bib.Set(vals[1])
		rec.PageStart = bib.Set(vals[2])
		rec.PageEnd = bib.Set(vals[3])
		rec.Year = bib.Set(vals[4])
	} else {
		header, ok := lines.FirstContaining(doc.PageLines, "Comp German")
		if !ok {
			return nil, failf(venue.JCGL, "masthead")
		}
		vals, err := requireMatch(venue.JCGL, "year", jcglFallbackRe, header)
		if err != nil {
			return nil, err
		}
		rec.Year = bib.Set(vals[1])
		rec.Volume = bib.Set(vals[2])
		rec.PageStart = bib.Set(vals[3])
		rec.PageEnd = bib.Set(vals[4])
	}

	title, terr := metaTitle(doc, venue.JCGL)
	if terr != nil {
		return nil, terr
	}
	rec.Title = bib.Set(title)

	var byline string
	if author, ok := metaField(doc, "Author"); ok {
		byline = author
	} else {
		if len(doc.PageLines) < 8 {
			return nil, failf(venue.JCGL, "author")
		}
		byline = normalize.FixGlyphs(doc.PageLines[7], nil)
		byline = strings.TrimRight(byline, "0123456789")
	}
	rec.Authors = splitAuthors(byline, " and ")
	if len(rec.Authors) == 0 {
		return nil, failf(venue.JCGL, "author")
	}

	return rec, nil
}
