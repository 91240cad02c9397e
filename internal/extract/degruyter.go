package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/matsen/renamepdf/internal/bib"
	"github.com/matsen/renamepdf/internal/lines"
	"github.com/matsen/renamepdf/internal/normalize"
	"github.com/matsen/renamepdf/internal/textsource"
	"github.com/matsen/renamepdf/internal/venue"
)

// De Gruyter journals: Linguistic Typology, Linguistics, The
// Linguistic Review, Theoretical Linguistics. The house style stamps
// "Journal YEAR; VOL(NUM): FIRST–LAST" into the Subject.

var (
	ltHeaderRe   = regexp.MustCompile(`Linguistic Typology (\d{4}); (\d{1,2})\((\d{1,2})\): (\d{1,4})–(\d{1,4})`)
	lingHeaderRe = regexp.MustCompile(`Linguistics (\d{4}); (\d{1,3})\((\d{1,2})\): (\d{1,4})–(\d{1,4})`)
	tlrHeaderRe  = regexp.MustCompile(`The Linguistic Review (\d{1,2}) \((\d{4})\), (\d{1,4})–(\d{1,4})`)
	theoHeaderRe = regexp.MustCompile(`Theoretical Linguistics (\d{4}); (\d{1,2})\((\d{1,2}(?:–\d{1,2})?)\): (\d{1,4}) – (\d{1,4})`)
)

// theoreticalLayoutChange: issues from this year on anchor title and
// byline to the repeated subject line; earlier issues used blank-line
// delimited blocks.
const theoreticalLayoutChange = 2014

func extractLingTypology(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	vals, err := requireMatch(venue.LingTypology, "year", ltHeaderRe, m.Signature)
	if err != nil {
		return nil, err
	}
	return degruyterFenced(doc, "Linguistic Typology", venue.LingTypology, vals)
}

func extractLinguistics(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	header := m.Signature
	if !lingHeaderRe.MatchString(header) {
		if found, ok := lines.FirstContaining(doc.PageLines, "Linguistics "); ok {
			header = found
		}
	}
	vals, err := requireMatch(venue.Linguistics, "year", lingHeaderRe, header)
	if err != nil {
		return nil, err
	}
	return degruyterFenced(doc, "Linguistics", venue.Linguistics, vals)
}

// degruyterFenced covers the shared fenced layout: the byline is the
// first line after fence 1 (with footnote stars), the title is the
// rest of that block.
func degruyterFenced(doc *textsource.Document, journal, venueKey string, vals []string) (*bib.Record, error) {
	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set(journal)
	rec.ShortJournalTitle = bib.Set(journal)
	rec.Year = bib.Set(vals[1])
	rec.Volume = bib.Set(vals[2])
	rec.Number = bib.Set(vals[3])
	rec.PageStart = bib.Set(vals[4])
	rec.PageEnd = bib.Set(vals[5])
	rec.EID = bib.Set("")
	rec.DOI = bib.Set(findDOI(doc.PageLines))

	tagged := lines.TagBlanks(doc.PageLines)
	block := lines.Between(tagged, 1)
	if len(block) < 2 {
		return nil, failf(venueKey, "title")
	}
	byline := strings.ReplaceAll(block[0], "*", "")
	rec.Authors = splitAuthors(byline, " and ")
	rec.Title = bib.Set(strings.Join(block[1:], " "))
	if len(rec.Authors) == 0 {
		return nil, failf(venueKey, "author")
	}

	return rec, nil
}

func extractTLR(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	ls := doc.PageLines

	vals, err := requireSearch(venue.TLR, "year", tlrHeaderRe, ls)
	if err != nil {
		return nil, err
	}

	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set("The Linguistic Review")
	rec.ShortJournalTitle = bib.Set("TLR")
	rec.Volume = bib.Set(vals[1])
	rec.Year = bib.Set(vals[2])
	rec.Number = bib.Set("")
	rec.PageStart = bib.Set(vals[3])
	rec.PageEnd = bib.Set(vals[4])
	rec.EID = bib.Set("")
	rec.DOI = bib.Set(findDOI(ls))

	blank := lines.IndexBlank(ls)
	abstractIdx := lines.IndexContaining(ls, "Abstract")
	if blank < 1 || abstractIdx <= blank+1 {
		return nil, failf(venue.TLR, "title")
	}
	rec.Title = bib.Set(lines.Join(ls, 0, blank))

	// The byline block may hold "A, B and C" across one or two lines,
	// in caps or mixed case.
	byline := lines.Join(ls, blank+1, abstractIdx-1)
	byline = strings.ReplaceAll(byline, " AND ", " and ")
	for _, part := range strings.Split(byline, " and ") {
		for _, name := range strings.Split(part, ", ") {
			name = strings.TrimSpace(name)
			if name != "" {
				rec.Authors = append(rec.Authors, name)
			}
		}
	}
	if len(rec.Authors) == 0 {
		return nil, failf(venue.TLR, "author")
	}

	return rec, nil
}

func extractTheoretical(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	vals, err := requireMatch(venue.TheoreticalLng, "year", theoHeaderRe, m.Signature)
	if err != nil {
		return nil, err
	}

	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set("Theoretical Linguistics")
	rec.ShortJournalTitle = bib.Set("Theoretical Linguistics")
	rec.Year = bib.Set(vals[1])
	rec.Volume = bib.Set(vals[2])
	rec.Number = bib.Set(vals[3])
	rec.PageStart = bib.Set(vals[4])
	rec.PageEnd = bib.Set(vals[5])
	rec.EID = bib.Set("")
	rec.DOI = bib.Set(findDOI(doc.PageLines))

	year, convErr := strconv.Atoi(vals[1])
	if convErr != nil {
		return nil, failf(venue.TheoreticalLng, "year")
	}

	var byline string
	if year >= theoreticalLayoutChange {
		// The subject line repeats on the page; byline and title
		// follow it at fixed offsets.
		anchor := lines.IndexContaining(doc.PageLines, "Theoretical Linguistics")
		if anchor < 0 || anchor+3 >= len(doc.PageLines) {
			return nil, failf(venue.TheoreticalLng, "title")
		}
		byline = strings.ReplaceAll(doc.PageLines[anchor+2], "*", "")
		rec.Title = bib.Set(doc.PageLines[anchor+3])
	} else {
		tagged := lines.TagBlanks(doc.PageLines)
		title := lines.Between(tagged, 1)
		authors := lines.Between(tagged, 2)
		if len(title) == 0 || len(authors) == 0 {
			return nil, failf(venue.TheoreticalLng, "title")
		}
		rec.Title = bib.Set(strings.Join(title, " "))
		byline = strings.ReplaceAll(authors[0], "*", "")
	}

	rec.Authors = splitAuthors(normalize.FixGlyphs(byline, nil), " and ")
	if len(rec.Authors) == 0 {
		return nil, failf(venue.TheoreticalLng, "author")
	}

	return rec, nil
}
