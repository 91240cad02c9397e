// Package render formats a validated record as a biblatex entry.
package render

import (
	"fmt"
	"strings"

	"github.com/matsen/renamepdf/internal/authorname"
	"github.com/matsen/renamepdf/internal/bib"
)

// Key returns the citation key for a record: the authors' concatenated
// last names followed directly by the year.
func Key(rec *bib.Record) string {
	return authorname.Format(rec.Names()).Citekey + rec.Year.Value()
}

// Entry renders a record as one biblatex entry (two linked entries for
// chapters: the incollection record cross-references a companion
// collection record for the containing volume). The record must have
// passed Validate.
func Entry(rec *bib.Record) string {
	switch rec.Type {
	case bib.Book, bib.Collection:
		return bookEntry(rec)
	case bib.InCollection:
		return chapterEntry(rec)
	default:
		return articleEntry(rec)
	}
}

func articleEntry(rec *bib.Record) string {
	names := authorname.Format(rec.Authors)

	var b strings.Builder
	open(&b, "article", names.Citekey+rec.Year.Value())
	field(&b, "author", names.Full)
	field(&b, "title", escapeLatex(rec.Title.Value()))
	field(&b, "subtitle", escapeLatex(rec.Subtitle.Value()))
	field(&b, "year", rec.Year.Value())
	field(&b, "journaltitle", escapeLatex(rec.JournalTitle.Value()))
	field(&b, "shortjournaltitle", escapeLatex(rec.ShortJournalTitle.Value()))
	field(&b, "volume", rec.Volume.Value())
	field(&b, "number", rec.Number.Value())
	field(&b, "pages", pageRange(rec))
	field(&b, "doi", rec.DOI.Value())
	field(&b, "eid", rec.EID.Value())
	b.WriteString("}")
	return b.String()
}

func bookEntry(rec *bib.Record) string {
	names := authorname.Format(rec.Names())

	var b strings.Builder
	open(&b, string(rec.Type), names.Citekey+rec.Year.Value())
	if rec.Type == bib.Collection {
		field(&b, "editor", names.Full)
	} else {
		field(&b, "author", names.Full)
	}
	field(&b, "year", rec.Year.Value())
	field(&b, "title", escapeLatex(rec.Title.Value()))
	field(&b, "subtitle", escapeLatex(rec.Subtitle.Value()))
	field(&b, "series", escapeLatex(rec.Series.Value()))
	field(&b, "number", rec.Number.Value())
	field(&b, "location", escapeLatex(rec.Location.Value()))
	field(&b, "publisher", escapeLatex(rec.Publisher.Value()))
	field(&b, "doi", rec.DOI.Value())
	b.WriteString("}")
	return b.String()
}

func chapterEntry(rec *bib.Record) string {
	authors := authorname.Format(rec.Authors)
	editors := authorname.Format(rec.Editors)
	colKey := editors.Citekey + rec.Year.Value() + "ed"

	var b strings.Builder
	open(&b, "incollection", authors.Citekey+rec.Year.Value())
	field(&b, "author", authors.Full)
	field(&b, "year", rec.Year.Value())
	field(&b, "title", escapeLatex(rec.Title.Value()))
	field(&b, "subtitle", escapeLatex(rec.Subtitle.Value()))
	field(&b, "pages", pageRange(rec))
	field(&b, "doi", rec.DOI.Value())
	field(&b, "crossref", colKey)
	b.WriteString("}\n\n")

	open(&b, "collection", colKey)
	field(&b, "editor", editors.Full)
	field(&b, "year", rec.Year.Value())
	field(&b, "title", escapeLatex(rec.BookTitle.Value()))
	field(&b, "subtitle", escapeLatex(rec.BookSubtitle.Value()))
	field(&b, "location", escapeLatex(rec.Location.Value()))
	field(&b, "publisher", escapeLatex(rec.Publisher.Value()))
	b.WriteString("}")
	return b.String()
}

func open(b *strings.Builder, entryType, key string) {
	fmt.Fprintf(b, "@%s{%s,\n", entryType, key)
}

func field(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "    %s = {%s},\n", name, value)
}

// pageRange renders "start--end"; an article identified by eid alone
// has no range and gets an empty pages field.
func pageRange(rec *bib.Record) string {
	if rec.PageStart.Empty() {
		return ""
	}
	return rec.PageStart.Value() + "--" + rec.PageEnd.Value()
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
	)
	return replacer.Replace(s)
}
