package authorname

import "strings"

// Names bundles the three formatted representations of an author list.
type Names struct {
	// Citekey is every author's capitalized, space-stripped last name
	// concatenated with no separator ("DoeSmith"). The caller appends
	// the publication year.
	Citekey string
	// File is the last-name list used in display strings and
	// filenames: "Doe", "Doe and Smith", "Doe, Smith and Jones".
	File string
	// Full is the reversed-name bibliographic list:
	// "Doe, Jane and Smith, John Q".
	Full string
}

// Format parses and formats an ordered author list. A single author
// gets singular formatting: no joiner anywhere.
func Format(authors []string) Names {
	parsed := make([]Name, 0, len(authors))
	for _, raw := range authors {
		parsed = append(parsed, Parse(raw))
	}

	var key strings.Builder
	lasts := make([]string, len(parsed))
	fulls := make([]string, len(parsed))
	for i, n := range parsed {
		last := titleCase(n.Last)
		key.WriteString(strings.ReplaceAll(last, " ", ""))
		lasts[i] = last
		fulls[i] = last + ", " + titleCase(n.First) + pad(titleCase(n.Middle))
		if n.First == "" {
			fulls[i] = last
		}
	}

	return Names{
		Citekey: key.String(),
		File:    joinList(lasts),
		Full:    strings.Join(fulls, " and "),
	}
}

// joinList joins names in running-text style: commas between all but
// the final pair, which is joined with "and".
func joinList(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
