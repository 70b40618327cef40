package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// foldText reduces s to a form suitable for case- and accent-insensitive
// matching: "Zoë Álvarez" and "zoe alvarez" fold to the same string.
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = s
	}
	return folder.String(out)
}

// matchesSearch reports whether any field contains the folded query.
// An empty query matches everything.
func matchesSearch(query string, fields ...string) bool {
	q := foldText(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(foldText(f), q) {
			return true
		}
	}
	return false
}
