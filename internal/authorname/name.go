// Package authorname parses raw author-name strings and formats the
// three name representations used downstream: the citation-key prefix,
// the filesystem display list, and the full bibliographic list.
package authorname

import (
	"strings"
	"unicode"
)

// Name holds the parsed components of one human name.
type Name struct {
	First  string
	Middle string
	Last   string
}

// Parse splits a raw author string into name components. Both
// "Last, First Middle" and "First Middle Last" forms are supported.
// The heuristics are deliberately locale-agnostic: the last
// space-separated token of an uninverted name is the last name,
// everything before the first token is middle names.
func Parse(raw string) Name {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Name{}
	}

	// Inverted form: "Last, First Middle"
	if idx := strings.Index(raw, ","); idx > 0 {
		last := strings.TrimSpace(raw[:idx])
		rest := strings.Fields(raw[idx+1:])
		n := Name{Last: last}
		if len(rest) > 0 {
			n.First = rest[0]
			n.Middle = strings.Join(rest[1:], " ")
		}
		return n
	}

	parts := strings.Fields(raw)
	switch len(parts) {
	case 1:
		return Name{Last: parts[0]}
	case 2:
		return Name{First: parts[0], Last: parts[1]}
	default:
		return Name{
			First:  parts[0],
			Middle: strings.Join(parts[1:len(parts)-1], " "),
			Last:   parts[len(parts)-1],
		}
	}
}

// titleCase capitalizes the first letter of every word, lowercasing the
// rest, so all-caps bylines ("JANE DOE") and all-lowercase metadata
// come out the same. Hyphenated last names keep both halves capitalized.
func titleCase(s string) string {
	var b strings.Builder
	startWord := true
	for _, r := range strings.ToLower(s) {
		if r == ' ' || r == '-' || r == '\'' {
			startWord = true
			b.WriteRune(r)
			continue
		}
		if startWord {
			b.WriteRune(unicode.ToUpper(r))
			startWord = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pad prefixes a space if s is non-empty. Middle names contribute no
// padding when absent.
func pad(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
