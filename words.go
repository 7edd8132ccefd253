package bbow

import (
	"strings"
	"unicode"
)

// isWord reports whether s is a valid word: non-empty and made of Unicode
// letters only. A token with internal punctuation ("ain't", "b-banana") is
// not a word and is dropped entirely, not split further.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// hasUppercase reports whether s contains at least one uppercase letter.
func hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

// trimToWord strips leading and trailing non-letter characters, leaving a
// span that, if non-empty, starts and ends with a letter. The result shares
// its backing memory with s.
func trimToWord(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
