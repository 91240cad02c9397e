// Package textsource reads the raw material extraction works on: the
// document information dictionary and the plain-text lines of page 1.
package textsource

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/matsen/renamepdf/internal/normalize"
)

// Document is the per-invocation input to classification and
// extraction. PageLines is never mutated after Read returns; extractors
// work on derived copies.
type Document struct {
	Path string

	// Meta holds decoded info-dictionary strings keyed by their PDF
	// names (Author, Title, Subject, doi, WPS-ARTICLEDOI, ...).
	// Absent fields are absent from the map, never empty strings.
	Meta map[string]string

	// PageLines are the text lines of page 1, in layout order.
	PageLines []string
}

// Read opens a PDF and materializes its metadata and first-page lines.
func Read(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc := &Document{
		Path: path,
		Meta: readInfo(r),
	}

	doc.PageLines, err = pageLines(r, 1)
	if err != nil {
		return nil, fmt.Errorf("extracting page 1 of %s: %w", path, err)
	}
	return doc, nil
}

// ReadPage extracts the text lines of an arbitrary page. A few venues
// put the citation block on a page other than 1.
func ReadPage(path string, page int) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ls, err := pageLines(r, page)
	if err != nil {
		return nil, fmt.Errorf("extracting page %d of %s: %w", page, path, err)
	}
	return ls, nil
}

// MetaField returns a decoded metadata field if present and non-empty.
func (d *Document) MetaField(key string) (string, bool) {
	v, ok := d.Meta[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func readInfo(r *pdf.Reader) map[string]string {
	meta := make(map[string]string)
	info := r.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return meta
	}
	for _, key := range info.Keys() {
		v := info.Key(key)
		if v.Kind() != pdf.String {
			// Indirect objects and non-string values are treated as
			// absent: a Subject that is an object reference is a
			// placeholder, not venue text.
			continue
		}
		s := decodeInfoString(v.RawString())
		if s == "" {
			continue
		}
		meta[key] = s
	}
	return meta
}

func pageLines(r *pdf.Reader, page int) ([]string, error) {
	if page < 1 || page > r.NumPage() {
		return nil, fmt.Errorf("page %d out of range (document has %d)", page, r.NumPage())
	}
	p := r.Page(page)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d is empty", page)
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return nil, err
	}
	ls := strings.Split(text, "\n")
	for i := range ls {
		ls[i] = strings.TrimRight(ls[i], "\r")
	}
	return ls, nil
}

// decodeInfoString maps a raw info-dictionary byte string to text the
// way the extraction rules expect it: a Latin-1 reading with the known
// artifact bytes repaired and UTF-16BE runs folded back to characters.
func decodeInfoString(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch c {
		case 0x84:
			b.WriteString("---")
		case 0x85:
			b.WriteString("-")
		default:
			b.WriteRune(rune(c))
		}
	}
	return normalize.DecodeUTF16Artifact(b.String())
}
