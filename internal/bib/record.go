// Package bib defines the core domain types for extracted bibliographic records.
package bib

// EntryType selects the bibliography-entry shape a record renders as.
type EntryType string

const (
	Article      EntryType = "article"
	Book         EntryType = "book"
	Collection   EntryType = "collection"
	InCollection EntryType = "incollection"
)

// Field is an optional string value. A field that an extractor never
// touched is distinguishable from one it explicitly set to "" (journals
// without issue numbers set Number to the empty string; a field left
// unset means the extractor never got that far).
type Field struct {
	value string
	set   bool
}

// Set returns a Field holding v.
func Set(v string) Field {
	return Field{value: v, set: true}
}

// IsSet reports whether the field was ever assigned.
func (f Field) IsSet() bool { return f.set }

// Value returns the field value, or "" if unset.
func (f Field) Value() string { return f.value }

// Empty reports whether the field is unset or set to "".
func (f Field) Empty() bool { return f.value == "" }

// Record is the extracted-and-normalized description of one document.
// Extractors populate it field by field; Validate gates rendering.
type Record struct {
	Type EntryType

	Title    Field
	Subtitle Field
	Year     Field

	JournalTitle      Field
	ShortJournalTitle Field
	Volume            Field
	Number            Field
	PageStart         Field
	PageEnd           Field
	EID               Field
	DOI               Field

	// Author order matches the author order on the paper.
	Authors []string

	// Book / chapter fields.
	Editors      []string
	BookTitle    Field
	BookSubtitle Field
	Series       Field
	Publisher    Field
	Location     Field
}

// New returns a Record of the given type.
func New(t EntryType) *Record {
	return &Record{Type: t}
}

// Venue returns the display venue: the short journal title for articles,
// the publisher for book-shaped entries.
func (r *Record) Venue() string {
	if r.ShortJournalTitle.IsSet() && !r.ShortJournalTitle.Empty() {
		return r.ShortJournalTitle.Value()
	}
	return r.Publisher.Value()
}

// Names returns the name list that stands in author position: editors
// for collections, authors otherwise.
func (r *Record) Names() []string {
	if r.Type == Collection {
		return r.Editors
	}
	return r.Authors
}
