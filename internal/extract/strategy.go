package extract

import (
	"regexp"
	"strings"

	"github.com/matsen/renamepdf/internal/textsource"
)

// The three extraction strategies every venue rule is assembled from:
//
//   - metadata-field: metaField / metaTitle pull publisher-embedded
//     values out of the info dictionary (decoding already happened in
//     textsource);
//   - anchored-regex: searchLines / requireMatch locate one line (or a
//     bounded window joined into one string) and capture fields from
//     it, failing loudly when a required group is absent;
//   - positional-block: the lines package's fence-post labels, plus
//     the small lookups below, address blocks by position.

// doiRun captures a DOI body: from "10." up to the next space, comma,
// or end of line.
var doiRun = regexp.MustCompile(`(10\.[^ ,]+)`)

// findDOI scans candidate lines for a DOI. A line qualifies if it
// mentions doi.org, a doi: label, a "DOI " label, or starts with a bare
// "10." prefix; the first qualifying line wins. No candidate means an
// empty DOI, which is not a failure.
func findDOI(ls []string) string {
	for _, l := range ls {
		trimmed := strings.TrimSpace(l)
		lower := strings.ToLower(l)
		if !strings.Contains(lower, "doi.org") &&
			!strings.Contains(lower, "doi:") &&
			!strings.Contains(l, "DOI ") &&
			!strings.HasPrefix(trimmed, "10.") {
			continue
		}
		if m := doiRun.FindStringSubmatch(l); m != nil {
			return strings.TrimRight(m[1], ".,;")
		}
	}
	return ""
}

// searchLines returns the submatches of the first line re matches.
func searchLines(re *regexp.Regexp, ls []string) []string {
	for _, l := range ls {
		if m := re.FindStringSubmatch(l); m != nil {
			return m
		}
	}
	return nil
}

// requireMatch matches re against s, failing with an extraction Error
// naming the venue and field when the layout does not fit.
func requireMatch(venueKey, field string, re *regexp.Regexp, s string) ([]string, *Error) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil, failf(venueKey, field)
	}
	return m, nil
}

// requireSearch is requireMatch over a line list.
func requireSearch(venueKey, field string, re *regexp.Regexp, ls []string) ([]string, *Error) {
	if m := searchLines(re, ls); m != nil {
		return m, nil
	}
	return nil, failf(venueKey, field)
}

// metaField reads an info-dictionary field, reporting presence.
func metaField(doc *textsource.Document, key string) (string, bool) {
	return doc.MetaField(key)
}

// metaTitle reads the embedded Title, failing when the venue template
// depends on it and the publisher did not set it.
func metaTitle(doc *textsource.Document, venueKey string) (string, *Error) {
	if t, ok := doc.MetaField("Title"); ok {
		return t, nil
	}
	return "", failf(venueKey, "title")
}

// metaAuthor reads the embedded Author the same way.
func metaAuthor(doc *textsource.Document, venueKey string) (string, *Error) {
	if a, ok := doc.MetaField("Author"); ok {
		return a, nil
	}
	return "", failf(venueKey, "author")
}

// splitAuthors splits a joined author string on a venue's separator and
// trims the pieces, dropping empties.
func splitAuthors(joined, sep string) []string {
	parts := strings.Split(joined, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// isAllUpper reports whether s consists of uppercase letters (with
// spaces and punctuation allowed) and contains at least one letter.
// Used for venues that set author bylines in full caps.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		}
	}
	return hasLetter
}
