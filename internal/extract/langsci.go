package extract

import (
	"regexp"
	"strings"

	"github.com/matsen/renamepdf/internal/bib"
	"github.com/matsen/renamepdf/internal/lines"
	"github.com/matsen/renamepdf/internal/textsource"
	"github.com/matsen/renamepdf/internal/venue"
)

// Language Science Press publishes open-access books. Monographs and
// edited volumes open with a series page (series + number, title
// block, author or "Edited by" block); chapter offprints carry a
// citation footer with an "In ... (eds.), ..." segment. These are the
// only templates producing book-shaped entry types.

var (
	langsciSeriesRe  = regexp.MustCompile(`^([A-Za-z][A-Za-z &]+?) (\d{1,3})$`)
	langsciYearRe    = regexp.MustCompile(`(?:©|Language Science Press)\D*(\d{4})`)
	langsciChapterRe = regexp.MustCompile(`(.+?)\. (\d{4})\. (.+?)\. ` +
		`In (.+?) \(eds?\.\), (.+?), (\d{1,4})–(\d{1,4})\. ` +
		`([A-Za-zü]+): Language Science Press`)
)

const langsciPublisher = "Language Science Press"

func extractLangSci(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	if rec, ok := langsciChapter(doc); ok {
		return rec, nil
	}
	return langsciBook(doc)
}

// langsciChapter recognizes a chapter offprint by its citation footer
// and emits an incollection record. The footer wraps over one
// blank-delimited block; each block is reassembled and tried on its
// own so surrounding page furniture cannot bleed into the author
// capture.
func langsciChapter(doc *textsource.Document) (*bib.Record, bool) {
	tagged := lines.TagBlanks(doc.PageLines)

	var blocks [][]string
	if first := lines.Fence(tagged, 1); first > 0 {
		blocks = append(blocks, tagged[:first])
	} else if first < 0 {
		blocks = append(blocks, doc.PageLines)
	}
	for n := 1; ; n++ {
		b := lines.Between(tagged, n)
		if b == nil {
			break
		}
		blocks = append(blocks, b)
	}

	var vals []string
	for _, b := range blocks {
		if vals = langsciChapterRe.FindStringSubmatch(strings.Join(b, " ")); vals != nil {
			break
		}
	}
	if vals == nil {
		return nil, false
	}

	rec := bib.New(bib.InCollection)
	rec.Authors = splitAuthors(strings.ReplaceAll(vals[1], " & ", " and "), " and ")
	rec.Year = bib.Set(vals[2])
	rec.Title = bib.Set(vals[3])
	rec.Editors = splitAuthors(strings.ReplaceAll(vals[4], " & ", " and "), " and ")
	rec.BookTitle = bib.Set(vals[5])
	rec.PageStart = bib.Set(vals[6])
	rec.PageEnd = bib.Set(vals[7])
	rec.Location = bib.Set(vals[8])
	rec.Publisher = bib.Set(langsciPublisher)
	rec.Number = bib.Set("")
	rec.EID = bib.Set("")
	rec.DOI = bib.Set(findDOI(doc.PageLines))

	return rec, true
}

// langsciBook parses the series page of a monograph or edited volume.
func langsciBook(doc *textsource.Document) (*bib.Record, error) {
	ls := doc.PageLines
	tagged := lines.TagBlanks(ls)

	rec := bib.New(bib.Book)
	rec.Publisher = bib.Set(langsciPublisher)
	rec.Location = bib.Set("Berlin")
	rec.Number = bib.Set("")
	rec.EID = bib.Set("")
	rec.DOI = bib.Set(findDOI(ls))

	// Series and in-series number head the page.
	head := ls
	if len(head) > 5 {
		head = head[:5]
	}
	for _, l := range head {
		if vals := langsciSeriesRe.FindStringSubmatch(l); vals != nil {
			rec.Series = bib.Set(vals[1])
			rec.Number = bib.Set(vals[2])
			break
		}
	}

	title := lines.Between(tagged, 1)
	if len(title) == 0 {
		return nil, failf(venue.LangSci, "title")
	}
	rec.Title = bib.Set(strings.Join(title, " "))

	nameBlock := lines.Between(tagged, 2)
	if len(nameBlock) == 0 {
		return nil, failf(venue.LangSci, "author")
	}
	if strings.EqualFold(nameBlock[0], "Edited by") {
		rec.Type = bib.Collection
		for _, l := range nameBlock[1:] {
			rec.Editors = append(rec.Editors, strings.TrimSpace(l))
		}
		if len(rec.Editors) == 0 {
			return nil, failf(venue.LangSci, "editor")
		}
	} else {
		for _, l := range nameBlock {
			rec.Authors = append(rec.Authors, strings.TrimSpace(l))
		}
	}

	year, err := requireSearch(venue.LangSci, "year", langsciYearRe, ls)
	if err != nil {
		return nil, err
	}
	rec.Year = bib.Set(year[1])

	return rec, nil
}
