// Package venue classifies a document against the closed set of known
// publication venues. Classification is first-match-wins over an
// ordered signature list; more specific signatures are listed before
// the generic ones whose text they contain ("Theoretical Linguistics"
// before the bare "Linguistics" pattern), and that ordering is part of
// the contract, not an accident of iteration.
package venue

import (
	"errors"
	"regexp"
	"strings"

	"github.com/matsen/renamepdf/internal/textsource"
)

// ErrUnidentified means no known signature matched either the Subject
// metadata or the page-1 text. The venue set is deliberately
// closed-world: an unknown venue is a diagnostic, never a guess.
var ErrUnidentified = errors.New("no known venue signature matched")

// Canonical venue keys.
const (
	JSTOR          = "jstor"
	BBS            = "bbs"
	Cognition      = "cognition"
	CogSci         = "cogsci"
	JCGL           = "jcgl"
	JoL            = "jol"
	JGL            = "jgl"
	Glossa         = "glossa"
	GlossaCite     = "glossa-cite"
	JLM            = "jlm"
	Language       = "language"
	LLC            = "llc"
	Lingua         = "lingua"
	LI             = "li"
	LingTypology   = "linguistic-typology"
	Linguistics    = "linguistics"
	NLLT           = "nllt"
	NLS            = "nls"
	Syntax         = "syntax"
	TLR            = "tlr"
	TheoreticalLng = "theoretical-linguistics"
	LangSci        = "langsci"
)

// Match identifies which venue template fired and the text it fired on.
type Match struct {
	Key         string
	Signature   string // the subject string or page line that matched
	FromSubject bool
}

// signature is one entry in the dispatch table: a literal substring or
// a compiled pattern, checked in table order.
type signature struct {
	key     string
	substr  string
	pattern *regexp.Regexp
}

func (s signature) matches(line string) bool {
	if s.substr != "" && strings.Contains(line, s.substr) {
		return true
	}
	return s.pattern != nil && s.pattern.MatchString(line)
}

// signatures is ordered most specific first. Substring containment
// between entries: "Theoretical Linguistics", "Linguistic Typology",
// "The Linguistic Review", "Linguistic Inquiry" and "Language and
// Linguistics Compass" all contain text the generic "Linguistics" and
// "Language" patterns would also hit, so they come first.
var signatures = []signature{
	{key: GlossaCite, substr: "TO CITE THIS ARTICLE"},
	{key: TheoreticalLng, substr: "Theoretical Linguistics"},
	{key: LingTypology, substr: "Linguistic Typology"},
	{key: TLR, substr: "The Linguistic Review"},
	{key: LI, substr: "Linguistic Inquiry"},
	{key: LLC, substr: "Language and Linguistics Compass"},
	{key: JLM, substr: "Journal of Language Modelling"},
	{key: JCGL, substr: "Comparative Germanic Linguistics"},
	{key: JCGL, substr: "J Comp German Linguistics"},
	{key: JGL, substr: "Journal ofGermanic Linguistics"},
	{key: JGL, substr: "Journal of Germanic Linguistics"},
	{key: JoL, substr: "J. Linguistics"},
	{key: LangSci, substr: "Language Science Press"},
	{key: Language, substr: "Language, Volume"},
	{key: BBS, substr: "BEHAVIORAL AND BRAIN"},
	{key: NLLT, substr: "Nat Lang Ling"},
	{key: NLS, substr: "Nat Lang Semantics"},
	{key: CogSci, substr: "Cognitive Science"},
	{key: Cognition, substr: "Cognition"},
	{key: Glossa, substr: "Glossa"},
	{key: Lingua, substr: "Lingua"},
	{key: Syntax, substr: "Syntax"},
	{key: Linguistics, pattern: regexp.MustCompile(`Linguistics \d{1,4}`)},
}

// repositoryMarker flags a Subject written by a repository rather than
// the publisher; such subjects carry no venue information.
const repositoryMarker = "Downloaded from"

// aggregatorMarker flags JSTOR first pages, which carry the original
// venue in a "Source:" line and need a structural extraction path.
const aggregatorMarker = "Source: "

// Classify returns the venue template for a document, or
// ErrUnidentified. Pure: the document is not modified.
func Classify(doc *textsource.Document) (Match, error) {
	if subject, ok := doc.MetaField("Subject"); ok && !strings.Contains(subject, repositoryMarker) {
		for _, sig := range signatures {
			if sig.matches(subject) {
				return Match{Key: sig.key, Signature: subject, FromSubject: true}, nil
			}
		}
		// Subject present but unrecognized: fall through to the page
		// text. Some publishers stamp an unrelated Subject while the
		// first page still carries a known masthead.
	}

	if _, ok := lineContaining(doc.PageLines, aggregatorMarker); ok {
		return Match{Key: JSTOR}, nil
	}

	// Table order outranks line order: a generic pattern matching an
	// early line must not shadow a specific signature further down the
	// page (a Language Science Press series title also matches the
	// bare "Linguistics N" pattern).
	for _, sig := range signatures {
		for _, line := range doc.PageLines {
			if sig.matches(line) {
				return Match{Key: sig.key, Signature: line}, nil
			}
		}
	}

	return Match{}, ErrUnidentified
}

func lineContaining(ls []string, substr string) (string, bool) {
	for _, l := range ls {
		if strings.Contains(l, substr) {
			return l, true
		}
	}
	return "", false
}
