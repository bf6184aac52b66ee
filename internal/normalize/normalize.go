// Package normalize implements the question-preprocessing transform shown
// alongside answers: lowercase, strip punctuation, collapse whitespace.
package normalize

import "strings"

// punctuation is the fixed ASCII punctuation set removed from questions.
// No locale-aware classification; characters outside this set pass through.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Question lowercases s, removes every ASCII punctuation character, and
// collapses whitespace runs into single spaces. The result of a normalized
// input is the input itself, so the transform is idempotent.
func Question(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
