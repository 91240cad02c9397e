// Package extract recovers bibliographic fields from a classified
// document. Each venue template is an independent rule registered in
// the dispatch table below; all of them are built from three reusable
// strategies (metadata fields, anchored regexes, positional blocks)
// implemented in strategy.go.
package extract

import (
	"fmt"

	"github.com/matsen/renamepdf/internal/bib"
	"github.com/matsen/renamepdf/internal/textsource"
	"github.com/matsen/renamepdf/internal/venue"
)

// Error reports a required lookup that failed inside a recognized
// venue: the physical layout did not match the template. Extraction
// for the document stops; there is no partial bibliographic output.
type Error struct {
	Venue string
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: extracting %s: %v", e.Venue, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: extracting %s: layout did not match", e.Venue, e.Field)
}

func (e *Error) Unwrap() error { return e.Err }

// failf builds an extraction Error for a venue/field pair.
func failf(venueKey, field string) *Error {
	return &Error{Venue: venueKey, Field: field}
}

// Func is one venue's extraction rule.
type Func func(doc *textsource.Document, m venue.Match) (*bib.Record, error)

// extractors maps venue keys to their rules. Ordering lives in the
// classifier; this table only needs to be total over its keys.
var extractors = map[string]Func{
	venue.JSTOR:          extractJSTOR,
	venue.BBS:            extractBBS,
	venue.Cognition:      extractCognition,
	venue.CogSci:         extractCogSci,
	venue.JCGL:           extractJCGL,
	venue.JoL:            extractJoL,
	venue.JGL:            extractJGL,
	venue.Glossa:         extractGlossa,
	venue.GlossaCite:     extractGlossaCite,
	venue.JLM:            extractJLM,
	venue.Language:       extractLanguage,
	venue.LLC:            extractLLC,
	venue.Lingua:         extractLingua,
	venue.LI:             extractLI,
	venue.LingTypology:   extractLingTypology,
	venue.Linguistics:    extractLinguistics,
	venue.NLLT:           extractNLLT,
	venue.NLS:            extractNLS,
	venue.Syntax:         extractSyntax,
	venue.TLR:            extractTLR,
	venue.TheoreticalLng: extractTheoretical,
	venue.LangSci:        extractLangSci,
}

// Run applies the extraction rule selected by the classifier.
func Run(doc *textsource.Document, m venue.Match) (*bib.Record, error) {
	fn, ok := extractors[m.Key]
	if !ok {
		return nil, &Error{Venue: m.Key, Field: "rule", Err: fmt.Errorf("no extractor registered")}
	}
	return fn(doc, m)
}

// Venues returns the set of venue keys with a registered extractor.
func Venues() []string {
	keys := make([]string, 0, len(extractors))
	for k := range extractors {
		keys = append(keys, k)
	}
	return keys
}
