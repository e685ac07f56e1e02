// Package tokenizer extracts word tokens from paragraph text.
package tokenizer

import (
	"iter"
	"regexp"
	"strings"
)

// wordRegex matches maximal runs of word-constituent characters: Unicode
// letters, digits, underscore, and the apostrophe. The apostrophe joins a run
// ("п'ять" is one token) but is stripped from the token content.
var wordRegex = regexp.MustCompile(`[\p{L}\p{N}_']+`)

// Tokens returns a lazy, single-pass sequence of raw tokens found in text.
// Runs consisting only of apostrophes are never emitted.
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		for len(rest) > 0 {
			loc := wordRegex.FindStringIndex(rest)
			if loc == nil {
				return
			}
			token := strings.ReplaceAll(rest[loc[0]:loc[1]], "'", "")
			rest = rest[loc[1]:]
			if token == "" {
				continue
			}
			if !yield(token) {
				return
			}
		}
	}
}

// Tokenize collects all tokens of text into a slice.
func Tokenize(text string) []string {
	tokens := make([]string, 0) // Initialize as empty slice, not nil
	for token := range Tokens(text) {
		tokens = append(tokens, token)
	}
	return tokens
}
