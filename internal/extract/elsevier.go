package extract

import (
	"regexp"

	"github.com/matsen/renamepdf/internal/bib"
	"github.com/matsen/renamepdf/internal/lines"
	"github.com/matsen/renamepdf/internal/normalize"
	"github.com/matsen/renamepdf/internal/textsource"
	"github.com/matsen/renamepdf/internal/venue"
)

// Elsevier journals: Lingua and Cognition. Both stamp a citation line
// into the Subject metadata; Lingua repeats it as the first page line.

var (
	linguaHeaderRe    = regexp.MustCompile(`Lingua (\d{1,3}) \((\d{4})\) (\d{1,4})–(\d{1,4})`)
	cognitionHeaderRe = regexp.MustCompile(`Cognition, (\d{1,3}) \((\d{4})\) (\d{1,6})`)
)

func extractLingua(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	header := m.Signature
	if !linguaHeaderRe.MatchString(header) && len(doc.PageLines) > 0 {
		header = doc.PageLines[0]
	}
	vals, err := requireMatch(venue.Lingua, "year", linguaHeaderRe, header)
	if err != nil {
		return nil, err
	}

	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set("Lingua")
	rec.ShortJournalTitle = bib.Set("Lingua")
	rec.Volume = bib.Set(vals[1])
	rec.Number = bib.Set("")
	rec.Year = bib.Set(vals[2])
	rec.PageStart = bib.Set(vals[3])
	rec.PageEnd = bib.Set(vals[4])
	rec.EID = bib.Set("")
	rec.DOI = bib.Set(findDOI(doc.PageLines))

	// Fixed layout below the header: title on line 5, byline on line 7.
	ls := doc.PageLines
	if len(ls) < 7 {
		return nil, failf(venue.Lingua, "title")
	}
	rec.Title = bib.Set(ls[4])
	rec.Authors = splitAuthors(normalize.StripMarkers(ls[6]), ", ")
	if len(rec.Authors) == 0 {
		return nil, failf(venue.Lingua, "author")
	}

	return rec, nil
}

func extractCognition(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	vals, err := requireMatch(venue.Cognition, "year", cognitionHeaderRe, m.Signature)
	if err != nil {
		return nil, err
	}

	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set("Cognition")
	rec.ShortJournalTitle = bib.Set("Cognition")
	rec.Volume = bib.Set(vals[1])
	rec.Number = bib.Set("")
	rec.Year = bib.Set(vals[2])
	// Cognition articles carry an article number instead of a page
	// range; pagination restarts at 1 inside each article.
	rec.EID = bib.Set(vals[3])
	rec.PageStart = bib.Set("1")
	rec.PageEnd = bib.Set("")
	rec.DOI = bib.Set(findDOI(doc.PageLines))

	tagged := lines.TagBlanks(doc.PageLines)
	i4 := lines.Fence(tagged, 4)
	if i4 < 0 || i4+1 >= len(tagged) {
		return nil, failf(venue.Cognition, "title")
	}
	rec.Title = bib.Set(tagged[i4+1])

	if author, ok := metaField(doc, "Author"); ok {
		rec.Authors = splitAuthors(author, ", ")
	} else {
		// The byline wraps around fences 5 and 6; glue the halves and
		// strip the footnote apparatus.
		i5 := lines.Fence(tagged, 5)
		i6 := lines.Fence(tagged, 6)
		if i5 < 1 || i6 < 1 {
			return nil, failf(venue.Cognition, "author")
		}
		joined := normalize.StripMarkers(tagged[i5-1] + tagged[i6-1])
		rec.Authors = splitAuthors(joined, ", ")
	}
	if len(rec.Authors) == 0 {
		return nil, failf(venue.Cognition, "author")
	}

	return rec, nil
}
