package extract

import (
	"regexp"
	"strings"

	"github.com/matsen/renamepdf/internal/bib"
	"github.com/matsen/renamepdf/internal/lines"
	"github.com/matsen/renamepdf/internal/textsource"
	"github.com/matsen/renamepdf/internal/venue"
)

// JSTOR scans are keyed off structural position rather than venue
// name: the original journal is recovered from the "Source:" line, the
// title sits immediately above the "Author(s):" line.

var (
	jstorSourceRe = regexp.MustCompile(`Source: (.+?),.+?Vol\. (\d{1,3})`)
	jstorIssueRe  = regexp.MustCompile(`No\. (\d{1,2}).+?(\d{4}).+?pp\. (\d{1,4})-(\d{1,4})`)
)

// shortJournalNames maps full journal titles seen on JSTOR source
// lines to their conventional short forms.
var shortJournalNames = map[string]string{
	"Linguistic Inquiry":                   "LI",
	"Natural Language & Linguistic Theory": "NLLT",
	"Language":                             "Lg",
}

func extractJSTOR(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	info := lines.DropEmpty(doc.PageLines)

	srcLine, ok := lines.FirstContaining(info, "Source: ")
	if !ok {
		return nil, failf(venue.JSTOR, "source line")
	}

	src, err := requireMatch(venue.JSTOR, "journaltitle", jstorSourceRe, srcLine)
	if err != nil {
		return nil, err
	}
	issue, err := requireMatch(venue.JSTOR, "year", jstorIssueRe, srcLine)
	if err != nil {
		return nil, err
	}

	journal := src[1]
	short, ok := shortJournalNames[journal]
	if !ok {
		short = journal
	}

	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set(journal)
	rec.ShortJournalTitle = bib.Set(short)
	rec.Volume = bib.Set(src[2])
	rec.Number = bib.Set(issue[1])
	rec.Year = bib.Set(issue[2])
	rec.PageStart = bib.Set(issue[3])
	rec.PageEnd = bib.Set(issue[4])
	rec.EID = bib.Set("")
	rec.DOI = bib.Set(findDOI(info))

	authorIdx := lines.IndexContaining(info, "Author(s): ")
	if authorIdx < 1 {
		return nil, failf(venue.JSTOR, "author")
	}
	rec.Title = bib.Set(strings.Trim(info[authorIdx-1], " $"))

	joined := strings.TrimSpace(strings.TrimPrefix(info[authorIdx], "Author(s):"))
	rec.Authors = splitAuthors(joined, " and ")
	if len(rec.Authors) == 0 {
		return nil, failf(venue.JSTOR, "author")
	}

	return rec, nil
}
