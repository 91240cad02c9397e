package extract

import (
	"regexp"
	"strings"

	"github.com/matsen/renamepdf/internal/bib"
	"github.com/matsen/renamepdf/internal/lines"
	"github.com/matsen/renamepdf/internal/textsource"
	"github.com/matsen/renamepdf/internal/venue"
)

// Glossa changed its first-page layout: older issues stamp the full
// citation into the Subject metadata, newer ones print a
// "TO CITE THIS ARTICLE:" block instead.

var (
	glossaYearRe    = regexp.MustCompile(`\d{4}`)
	glossaSubjectRe = regexp.MustCompile(`([A-Za-z].*) (\d{1,2})\((\d{1,2})\): (\d{1,3}).+?(\d{1,3})-(\d{1,3}).+?(\d.*)`)

	glossaCiteRe = regexp.MustCompile(`([A-Za-z].*?)\. (\d{4})\. (.+?)\. ` +
		`Glossa: a journal of general linguistics ` +
		`(\d{1,2})\((\d{1,2})\): (\d{1,3})\. (\d{1,3})–(\d{1,3})\. ` +
		`DOI: https://doi\.org/(\S+)`)
)

const glossaJournal = "Glossa: a journal of general linguistics"

func extractGlossa(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set(glossaJournal)
	rec.ShortJournalTitle = bib.Set("Glossa")

	year := glossaYearRe.FindString(m.Signature)
	if year == "" {
		return nil, failf(venue.Glossa, "year")
	}
	rec.Year = bib.Set(year)

	vals, err := requireMatch(venue.Glossa, "volume", glossaSubjectRe, m.Signature)
	if err != nil {
		return nil, err
	}
	rec.Volume = bib.Set(vals[2])
	rec.Number = bib.Set(vals[3])
	rec.EID = bib.Set(vals[4])
	rec.PageStart = bib.Set(vals[5])
	rec.PageEnd = bib.Set(vals[6])
	rec.DOI = bib.Set(strings.TrimSpace(vals[7]))

	title, terr := metaTitle(doc, venue.Glossa)
	if terr != nil {
		return nil, terr
	}
	rec.Title = bib.Set(title)

	author, aerr := metaAuthor(doc, venue.Glossa)
	if aerr != nil {
		return nil, aerr
	}
	rec.Authors = splitAuthors(author, " and ")
	if len(rec.Authors) == 0 {
		return nil, failf(venue.Glossa, "author")
	}

	return rec, nil
}

func extractGlossaCite(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	idx := lines.IndexContaining(doc.PageLines, "TO CITE THIS ARTICLE")
	if idx < 0 {
		return nil, failf(venue.GlossaCite, "citation block")
	}

	// The citation block wraps over several lines that already end in
	// spaces; reassemble it verbatim up to the next blank line.
	block := doc.PageLines[idx:]
	end := lines.IndexBlank(block)
	if end < 0 {
		end = len(block)
	}
	joined := strings.Join(block[1:end], "")

	vals, err := requireMatch(venue.GlossaCite, "citation", glossaCiteRe, joined)
	if err != nil {
		return nil, err
	}

	rec := bib.New(bib.Article)
	rec.JournalTitle = bib.Set(glossaJournal)
	rec.ShortJournalTitle = bib.Set("Glossa")
	rec.Year = bib.Set(vals[2])
	rec.Title = bib.Set(vals[3])
	rec.Volume = bib.Set(vals[4])
	rec.Number = bib.Set(vals[5])
	rec.EID = bib.Set(vals[6])
	rec.PageStart = bib.Set(vals[7])
	rec.PageEnd = bib.Set(vals[8])
	rec.DOI = bib.Set(strings.TrimRight(vals[9], "."))

	rec.Authors = splitAuthors(vals[1], " and ")
	if len(rec.Authors) == 0 {
		return nil, failf(venue.GlossaCite, "author")
	}

	return rec, nil
}
