// Package stemmer normalizes Ukrainian words to the stems used as inverted
// index keys. It applies a fixed set of suffix-stripping rules; it is not a
// full morphological analyzer and is allowed to over- and under-stem.
package stemmer

import (
	"strings"
	"unicode/utf8"
)

// ukrainianVowels are the trailing characters stripped in the final rule,
// together with the glide 'й'.
const ukrainianVowels = "аеєиіїоуюя" + "ь"

// Stem reduces a word to its normalized stem. Hyphenated words are split,
// each part is stemmed independently, and the parts are rejoined with '-'.
// The result may be empty.
func Stem(word string) string {
	word = strings.ToLower(word)

	if strings.Contains(word, "-") {
		parts := strings.Split(word, "-")
		for i, part := range parts {
			parts[i] = stemPart(part)
		}
		return strings.Join(parts, "-")
	}

	return stemPart(word)
}

// stemPart stems a single hyphen-free part. The rule order mirrors the
// reference suffix tables exactly: the agentive family is first-match-wins,
// the genitive/dative checks run sequentially without re-iteration, then
// trailing vowels and the glide are stripped one rune at a time.
func stemPart(word string) string {
	// Agentive/diminutive endings: -ець, or the shorter -ця / -цю variants.
	if strings.HasSuffix(word, "ець") {
		word = strings.TrimSuffix(word, "ець")
	} else if strings.HasSuffix(word, "ця") {
		word = strings.TrimSuffix(word, "ця")
	} else if strings.HasSuffix(word, "цю") {
		word = strings.TrimSuffix(word, "цю")
	}

	// Genitive/dative adjectival endings -ого and -ому. Both checks run, in
	// this order, each at most once.
	if strings.HasSuffix(word, "ого") {
		word = strings.TrimSuffix(word, "ого")
	}
	if strings.HasSuffix(word, "ому") {
		word = strings.TrimSuffix(word, "ому")
	}

	// Strip trailing vowels and 'й'.
	for word != "" {
		r, size := utf8.DecodeLastRuneInString(word)
		if !strings.ContainsRune(ukrainianVowels, r) && r != 'й' {
			break
		}
		word = word[:len(word)-size]
	}

	return word
}
