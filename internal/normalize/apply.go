package normalize

import "github.com/matsen/renamepdf/internal/bib"

// Apply normalizes an extracted record in place: glyph repair and
// control-character stripping on every text field, then subtitle
// splitting on the title (and book title, for chapter entries). The
// subtitle is only derived when the extractor did not set one itself.
func Apply(rec *bib.Record, extraGlyphs map[string]string) {
	clean := func(f bib.Field) bib.Field {
		if !f.IsSet() {
			return f
		}
		return bib.Set(StripControls(FixGlyphs(f.Value(), extraGlyphs)))
	}

	rec.Title = clean(rec.Title)
	rec.JournalTitle = clean(rec.JournalTitle)
	rec.BookTitle = clean(rec.BookTitle)
	rec.Series = clean(rec.Series)

	for i, a := range rec.Authors {
		rec.Authors[i] = StripControls(FixGlyphs(a, extraGlyphs))
	}
	for i, e := range rec.Editors {
		rec.Editors[i] = StripControls(FixGlyphs(e, extraGlyphs))
	}

	if !rec.Subtitle.IsSet() || rec.Subtitle.Empty() {
		title, subtitle := SplitSubtitle(rec.Title.Value())
		rec.Title = bib.Set(title)
		rec.Subtitle = bib.Set(subtitle)
	}
	if rec.BookTitle.IsSet() && (!rec.BookSubtitle.IsSet() || rec.BookSubtitle.Empty()) {
		title, subtitle := SplitSubtitle(rec.BookTitle.Value())
		rec.BookTitle = bib.Set(title)
		rec.BookSubtitle = bib.Set(subtitle)
	}
}
