package synonym

import (
	"strings"
	"unicode"
)

// stopWords are ignored when comparing multi-word phrases.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "of": {}, "in": {}, "on": {}, "at": {}, "to": {},
	"for": {}, "and": {}, "or": {}, "is": {}, "are": {}, "was": {}, "were": {},
}

// IsStopWord reports whether w is ignored in phrase comparisons.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// Normalize lowercases s, keeps letters, digits, whitespace and periods, and
// collapses runs of whitespace. Periods are kept so abbreviations such as
// "u.s." stay distinguishable from words.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ContentWords splits a normalized phrase and drops stop words.
func ContentWords(normalized string) []string {
	fields := strings.Fields(normalized)
	words := fields[:0:0]
	for _, f := range fields {
		if !IsStopWord(strings.Trim(f, ".")) {
			words = append(words, f)
		}
	}
	return words
}

func stripPeriods(s string) string {
	return strings.ReplaceAll(s, ".", "")
}
