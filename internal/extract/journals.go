package extract

import (
	"regexp"
	"strings"

	"github.com/matsen/renamepdf/internal/bib"
	"github.com/matsen/renamepdf/internal/lines"
	"github.com/matsen/renamepdf/internal/textsource"
	"github.com/matsen/renamepdf/internal/venue"
)

// Single-venue templates: Language (LSA), Journal of Language
// Modelling, Linguistic Inquiry.

var (
	// Project MUSE pages use e-prefixed page numbers for online-only
	// articles; the prefix is kept as part of the page value.
	languageSubjectRe = regexp.MustCompile(`.+? Volume (\d{1,3}), Number (\d{1,2}), .+? (\d{4}), pp\. (e?)(\d{1,4})-(e?)(\d{1,4})`)

	jlmSubjectRe = regexp.MustCompile(`Journal of Language Modelling Vol (\d{1,2}), No (\d{1,2}) \((\d{4})\), pp\. (\d{1,3})–(\d{1,3})`)

	liIssueRe = regexp.MustCompile(`.+?(\d{1,2}).+?(\d{1,2}).+?(\d{4})`)
	liPagesRe = regexp.MustCompile(`(\d{1,3})(–|-)(.*)`)
)

func extractLanguage(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	vals, err := requireMatch(venue.Language, "year", languageSubjectRe, m.Signature)
	if err != nil {
		return nil, err
	}

	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set("Language")
	rec.ShortJournalTitle = bib.Set("Lg")
	rec.Volume = bib.Set(vals[1])
	rec.Number = bib.Set(vals[2])
	rec.Year = bib.Set(vals[3])
	rec.PageStart = bib.Set(vals[4] + vals[5])
	rec.PageEnd = bib.Set(vals[6] + vals[7])
	rec.EID = bib.Set("")

	head := doc.PageLines
	if len(head) > 10 {
		head = head[:10]
	}
	rec.DOI = bib.Set(findDOI(head))

	title, terr := metaTitle(doc, venue.Language)
	if terr != nil {
		return nil, terr
	}
	rec.Title = bib.Set(title)

	author, aerr := metaAuthor(doc, venue.Language)
	if aerr != nil {
		return nil, aerr
	}
	rec.Authors = splitAuthors(author, ", ")
	if len(rec.Authors) == 0 {
		return nil, failf(venue.Language, "author")
	}

	return rec, nil
}

func extractJLM(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	vals, err := requireMatch(venue.JLM, "year", jlmSubjectRe, m.Signature)
	if err != nil {
		return nil, err
	}

	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set("Journal of Language Modelling")
	rec.ShortJournalTitle = bib.Set("Journal of Language Modelling")
	rec.Volume = bib.Set(vals[1])
	rec.Number = bib.Set(vals[2])
	rec.Year = bib.Set(vals[3])
	rec.PageStart = bib.Set(vals[4])
	rec.PageEnd = bib.Set(vals[5])
	rec.EID = bib.Set("")
	rec.DOI = bib.Set("")

	ls := doc.PageLines
	blank := lines.IndexBlank(ls)
	if blank < 1 || blank+1 >= len(ls) {
		return nil, failf(venue.JLM, "title")
	}
	rec.Title = bib.Set(lines.Join(ls, 0, blank))

	byline := regexp.MustCompile(`\d`).ReplaceAllString(ls[blank+1], "")
	rec.Authors = splitAuthors(byline, " and ")
	if len(rec.Authors) == 0 {
		return nil, failf(venue.JLM, "author")
	}

	return rec, nil
}

func extractLI(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	full := doc.PageLines

	// LI is messy: the citation line and pagination live in the page
	// footer, the title and byline at the top. Work on a window of
	// the first ten and last few lines.
	info := make([]string, 0, 19)
	if len(full) > 10 {
		info = append(info, full[:10]...)
	} else {
		info = append(info, full...)
	}
	if len(full) > 19 {
		info = append(info, full[len(full)-9:len(full)-2]...)
	}

	headerIdx := lines.IndexContaining(info, "Linguistic Inquiry")
	if headerIdx < 0 || headerIdx+1 >= len(info) {
		return nil, failf(venue.LI, "masthead")
	}
	vals, err := requireMatch(venue.LI, "year", liIssueRe, info[headerIdx])
	if err != nil {
		return nil, err
	}

	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set("Linguistic Inquiry")
	rec.ShortJournalTitle = bib.Set("LI")
	rec.Volume = bib.Set(vals[1])
	rec.Number = bib.Set(vals[2])
	rec.Year = bib.Set(vals[3])
	rec.EID = bib.Set("")
	rec.DOI = bib.Set(findDOI(full))

	// Page numbers sit on the line after the citation line.
	pages, err := requireMatch(venue.LI, "pages", liPagesRe, info[headerIdx+1])
	if err != nil {
		return nil, err
	}
	rec.PageStart = bib.Set(pages[1])
	rec.PageEnd = bib.Set(strings.TrimSpace(pages[3]))

	// "Remarks and Replies" issues carry an extra department header
	// above the title; it shifts the first block by one fence.
	if strings.Contains(info[0], "Remarks") {
		blank := lines.IndexBlank(info)
		if blank < 0 {
			return nil, failf(venue.LI, "title")
		}
		info = info[blank+1:]
	}

	titleEnd := lines.IndexBlank(info)
	if titleEnd < 1 {
		return nil, failf(venue.LI, "title")
	}
	rec.Title = bib.Set(lines.Join(info, 0, titleEnd))

	rest := info[titleEnd+1:]
	authorEnd := lines.IndexBlank(rest)
	if authorEnd < 0 {
		authorEnd = len(rest)
	}
	for _, l := range rest[:authorEnd] {
		if l != "" {
			rec.Authors = append(rec.Authors, l)
		}
	}
	if len(rec.Authors) == 0 {
		return nil, failf(venue.LI, "author")
	}

	return rec, nil
}
