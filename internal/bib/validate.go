package bib

import "fmt"

// ValidationError reports a required field that is unset or empty.
// A record failing validation is never rendered or used for a rename.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// Validate checks that every field the record's entry type requires is
// present and non-empty. Optional fields (number, eid, doi, subtitle)
// are never checked: an extractor sets those to "" when the venue has
// none, and that is a valid value.
func (r *Record) Validate() error {
	if r.Title.Empty() {
		return &ValidationError{Field: "title"}
	}
	if r.Year.Empty() {
		return &ValidationError{Field: "year"}
	}

	switch r.Type {
	case Article:
		if r.JournalTitle.Empty() {
			return &ValidationError{Field: "journaltitle"}
		}
		if r.ShortJournalTitle.Empty() {
			return &ValidationError{Field: "shortjournaltitle"}
		}
		if len(r.Authors) == 0 {
			return &ValidationError{Field: "author"}
		}
	case Book:
		if r.Publisher.Empty() {
			return &ValidationError{Field: "publisher"}
		}
		if len(r.Authors) == 0 {
			return &ValidationError{Field: "author"}
		}
	case Collection:
		if r.Publisher.Empty() {
			return &ValidationError{Field: "publisher"}
		}
		if len(r.Editors) == 0 {
			return &ValidationError{Field: "editor"}
		}
	case InCollection:
		if r.BookTitle.Empty() {
			return &ValidationError{Field: "booktitle"}
		}
		if r.Publisher.Empty() {
			return &ValidationError{Field: "publisher"}
		}
		if len(r.Authors) == 0 {
			return &ValidationError{Field: "author"}
		}
		if len(r.Editors) == 0 {
			return &ValidationError{Field: "editor"}
		}
	default:
		return &ValidationError{Field: "entrytype"}
	}

	for i, a := range r.Names() {
		if a == "" {
			return &ValidationError{Field: fmt.Sprintf("author[%d]", i)}
		}
	}

	return nil
}
