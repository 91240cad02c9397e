// Package normalize repairs text damage introduced by PDF text
// extraction and splits titles into title and subtitle.
//
// The glyph table covers the mis-decoded sequences we have actually
// seen: combining diacritics that come out as a separate mark after
// (or before) their base letter, and cedillas detached from their
// consonant. Repairs are opportunistic; an unrecognized artifact is
// left in place rather than treated as an error.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// glyphFixes maps broken extractor output to the intended character.
var glyphFixes = map[string]string{
	"u¨": "ü",
	"o¨": "ö",
	"a¨": "ä",
	"a´": "á",
	"e´": "é",
	"o´": "ó",
	"¸s": "ş",
	"¸c": "ç",
	"ˇc": "č",
	"ˇs": "š",
	"ˇz": "ž",
	" \x10": "-",
}

// markerPattern matches footnote apparatus glued to author names:
// asterisks, bare digits, and single superscript letters before a comma.
var markerPattern = regexp.MustCompile(`\*|\d|( [a-z],)`)

// FixGlyphs repairs known mis-decoded sequences in s. Entries in extra
// are applied after the built-in table and may override it.
func FixGlyphs(s string, extra map[string]string) string {
	for from, to := range glyphFixes {
		s = strings.ReplaceAll(s, from, to)
	}
	for from, to := range extra {
		s = strings.ReplaceAll(s, from, to)
	}
	return s
}

// StripMarkers removes footnote markers and digits from an author line.
func StripMarkers(s string) string {
	return strings.TrimSpace(markerPattern.ReplaceAllString(s, ""))
}

// StripControls removes C0/C1 control characters (except nothing: line
// structure is gone by the time fields are single strings).
func StripControls(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// DecodeUTF16Artifact undoes the "þÿ"-prefixed UTF-16BE byte strings
// that some info dictionaries carry when read as Latin-1: each original
// character appears as a pair of Latin-1 runes, the high byte first.
// Strings without the marker are returned unchanged.
func DecodeUTF16Artifact(s string) string {
	idx := strings.Index(s, "þÿ")
	if idx < 0 {
		return s
	}
	tail := s[idx+len("þÿ"):]

	var units []uint16
	var hi uint16
	haveHi := false
	for _, r := range tail {
		if r > 0xFF {
			continue
		}
		if !haveHi {
			hi = uint16(r)
			haveHi = true
			continue
		}
		units = append(units, hi<<8|uint16(r))
		haveHi = false
	}

	var b strings.Builder
	for _, r := range utf16.Decode(units) {
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return s[:idx] + b.String()
}

// SplitSubtitle splits a title at the first ": " (or, for titles where
// the separator was mangled to an underscore, at "_ "). The subtitle's
// first letter is capitalized. Titles without a separator come back
// unchanged with an empty subtitle, so the split is idempotent.
func SplitSubtitle(title string) (string, string) {
	if i := strings.Index(title, ": "); i >= 0 {
		return title[:i], capitalize(title[i+2:])
	}
	if i := strings.Index(title, "_ "); i >= 0 {
		return title[:i], capitalize(title[i+2:])
	}
	return title, ""
}

// capitalize uppercases the first letter of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
