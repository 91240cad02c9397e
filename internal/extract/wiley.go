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

// Wiley journals: Cognitive Science, Syntax, Language and Linguistics
// Compass. Wiley embeds the article DOI under WPS-ARTICLEDOI.

const wileyDOIKey = "WPS-ARTICLEDOI"

var (
	cogsciHeaderRe = regexp.MustCompile(`Cognitive Science (\d{1,4}).(\d{1,2}):(\d{1,4})-(\d{1,4})`)
	syntaxHeaderRe = regexp.MustCompile(`.+? (\d{1,2}):(\d{1,2}).+?(\d{4}), (\d{1,4})–(\d{1,4})`)

	llcOnlineRe = regexp.MustCompile(`.+? (\d{4}); (\d{1,3}): (\d{1,4})–(\d{1,4})`)
	llcLegacyRe = regexp.MustCompile(`.+? (\d{1,2})/(\d{1,2}).+?\((\d{4})\): (\d{1,4})–(\d{1,4}), (.*)`)
)

func extractCogSci(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	vals, err := requireMatch(venue.CogSci, "year", cogsciHeaderRe, m.Signature)
	if err != nil {
		return nil, err
	}

	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set("Cognitive Science")
	rec.ShortJournalTitle = bib.Set("Cognitive Science")
	rec.Year = bib.Set(vals[1])
	rec.Volume = bib.Set(vals[2])
	rec.Number = bib.Set("")
	rec.PageStart = bib.Set(vals[3])
	rec.PageEnd = bib.Set(vals[4])
	rec.EID = bib.Set("")

	if doi, ok := metaField(doc, wileyDOIKey); ok {
		rec.DOI = bib.Set(doi)
	} else {
		rec.DOI = bib.Set(findDOI(doc.PageLines))
	}

	title, terr := metaTitle(doc, venue.CogSci)
	if terr != nil {
		return nil, terr
	}
	rec.Title = bib.Set(title)

	blank := lines.IndexBlank(doc.PageLines)
	if blank < 0 || blank+3 >= len(doc.PageLines) {
		return nil, failf(venue.CogSci, "author")
	}
	byline := normalize.FixGlyphs(doc.PageLines[blank+3], nil)
	rec.Authors = splitAuthors(byline, ", ")
	if len(rec.Authors) == 0 {
		return nil, failf(venue.CogSci, "author")
	}

	return rec, nil
}

func extractSyntax(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	abstractIdx := lines.IndexContaining(doc.PageLines, "Abstract")
	if abstractIdx < 3 {
		return nil, failf(venue.Syntax, "masthead")
	}
	info := doc.PageLines[:abstractIdx]

	vals, err := requireMatch(venue.Syntax, "year", syntaxHeaderRe, info[0])
	if err != nil {
		return nil, err
	}

	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set("Syntax")
	rec.ShortJournalTitle = bib.Set("Syntax")
	rec.Volume = bib.Set(vals[1])
	rec.Number = bib.Set(vals[2])
	rec.Year = bib.Set(vals[3])
	rec.PageStart = bib.Set(vals[4])
	rec.PageEnd = bib.Set(vals[5])
	rec.EID = bib.Set("")

	if doi, ok := metaField(doc, wileyDOIKey); ok {
		rec.DOI = bib.Set(doi)
	} else {
		rec.DOI = bib.Set("")
	}

	title, terr := metaTitle(doc, venue.Syntax)
	if terr != nil {
		return nil, terr
	}
	rec.Title = bib.Set(title)

	// The byline is the last non-blank line before the abstract.
	byline := info[len(info)-1]
	if byline == "" && len(info) > 1 {
		byline = info[len(info)-2]
	}
	rec.Authors = splitAuthors(byline, " and ")
	if len(rec.Authors) == 0 {
		return nil, failf(venue.Syntax, "author")
	}

	return rec, nil
}

func extractLLC(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	ls := doc.PageLines

	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set("Language and Linguistics Compass")
	rec.ShortJournalTitle = bib.Set("Lang Linguist Compass")
	rec.Number = bib.Set("")
	rec.EID = bib.Set("")

	title, terr := metaTitle(doc, venue.LLC)
	if terr != nil {
		return nil, terr
	}
	rec.Title = bib.Set(title)

	var joined string
	if lines.IndexContaining(ls, "wileyonlinelibrary.com/journal/lnc3") >= 0 {
		// Current layout: the citation line reads
		// "Lang. Linguist. Compass. year; vol: first-last".
		info, ok := lines.FirstContaining(ls, "Lang Linguist")
		if !ok {
			info, ok = lines.FirstContaining(ls, "Lang. Linguist.")
		}
		if !ok {
			return nil, failf(venue.LLC, "citation line")
		}
		vals, err := requireMatch(venue.LLC, "year", llcOnlineRe, info)
		if err != nil {
			return nil, err
		}
		rec.Year = bib.Set(vals[1])
		rec.Volume = bib.Set(vals[2])
		rec.PageStart = bib.Set(vals[3])
		rec.PageEnd = bib.Set(vals[4])

		if doi, ok := metaField(doc, wileyDOIKey); ok {
			rec.DOI = bib.Set(doi)
		} else {
			rec.DOI = bib.Set(findDOI(ls))
		}
		author, aerr := metaAuthor(doc, venue.LLC)
		if aerr != nil {
			return nil, aerr
		}
		joined = author
	} else {
		// Legacy layout: header line carries volume/number, year,
		// pages and DOI; the starred line is the byline.
		abstractIdx := lines.IndexContaining(ls, "Abstract")
		if abstractIdx < 1 {
			return nil, failf(venue.LLC, "masthead")
		}
		info := ls[:abstractIdx]

		starred, ok := lines.FirstContaining(info, "*")
		if !ok {
			return nil, failf(venue.LLC, "author")
		}
		joined = normalize.StripMarkers(starred)

		vals, err := requireMatch(venue.LLC, "year", llcLegacyRe, info[0])
		if err != nil {
			return nil, err
		}
		rec.Volume = bib.Set(vals[1])
		rec.Number = bib.Set(vals[2])
		rec.Year = bib.Set(vals[3])
		rec.PageStart = bib.Set(vals[4])
		rec.PageEnd = bib.Set(vals[5])
		rec.DOI = bib.Set(strings.TrimSpace(vals[6]))
	}

	rec.Authors = splitAuthors(joined, " and ")
	if len(rec.Authors) == 0 {
		return nil, failf(venue.LLC, "author")
	}

	return rec, nil
}
