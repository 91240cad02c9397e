// Package lines provides positional helpers over the ordered line list
// produced by page-text extraction. The central tool is fence-post
// labeling: blank delimiter lines are replaced by sequential integer
// labels so that the text blocks between them can be addressed by
// position ("the block between fence 1 and fence 2 is the title").
package lines

import (
	"strconv"
	"strings"
)

// TagBlanks returns a copy of in with each empty line replaced, in
// order of appearance, by the decimal string form of a running counter
// starting at 1. The input is never modified.
func TagBlanks(in []string) []string {
	out := make([]string, len(in))
	n := 1
	for i, s := range in {
		if s == "" {
			out[i] = strconv.Itoa(n)
			n++
		} else {
			out[i] = s
		}
	}
	return out
}

// Fence returns the index of fence label n in a tagged line list, or -1.
func Fence(tagged []string, n int) int {
	want := strconv.Itoa(n)
	for i, s := range tagged {
		if s == want {
			return i
		}
	}
	return -1
}

// Between returns the lines strictly between fence n and fence n+1.
// If fence n+1 does not exist, the block runs to the end of the list.
// Returns nil if fence n does not exist.
func Between(tagged []string, n int) []string {
	start := Fence(tagged, n)
	if start < 0 {
		return nil
	}
	end := Fence(tagged, n+1)
	if end < 0 {
		end = len(tagged)
	}
	if start+1 >= end {
		return []string{}
	}
	return tagged[start+1 : end]
}

// IndexContaining returns the index of the first line containing
// substr, or -1.
func IndexContaining(ls []string, substr string) int {
	for i, s := range ls {
		if strings.Contains(s, substr) {
			return i
		}
	}
	return -1
}

// FirstContaining returns the first line containing substr.
func FirstContaining(ls []string, substr string) (string, bool) {
	if i := IndexContaining(ls, substr); i >= 0 {
		return ls[i], true
	}
	return "", false
}

// IndexBlank returns the index of the first empty line, or -1.
func IndexBlank(ls []string) int {
	for i, s := range ls {
		if s == "" {
			return i
		}
	}
	return -1
}

// DropEmpty returns a copy of ls without empty lines.
func DropEmpty(ls []string) []string {
	out := make([]string, 0, len(ls))
	for _, s := range ls {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Join concatenates ls[from:to] with single spaces, clamping the bounds
// to the list. Used to reassemble titles that wrap across lines.
func Join(ls []string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(ls) {
		to = len(ls)
	}
	if from >= to {
		return ""
	}
	return strings.Join(ls[from:to], " ")
}
