package tokenizer

import (
	"regexp"
	"strings"
)

// wordRegex matches maximal runs of ASCII letters.
var wordRegex = regexp.MustCompile(`[a-zA-Z]+`)

// indexTokenRegex matches maximal alphanumeric runs, the token shape
// used by the inverted index.
var indexTokenRegex = regexp.MustCompile(`\w+`)

// sanitizeRegex matches everything that is not a lowercase letter or
// a space.
var sanitizeRegex = regexp.MustCompile(`[^a-z ]`)

// keywordRegex matches everything that is not a lowercase letter.
var keywordRegex = regexp.MustCompile(`[^a-z]`)

// Words splits text into lowercased letter-only tokens.
func Words(text string) []string {
	matches := wordRegex.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.ToLower(m))
	}
	return tokens
}

// IndexTokens splits text into lowercased alphanumeric tokens.
func IndexTokens(text string) []string {
	matches := indexTokenRegex.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.ToLower(m))
	}
	return tokens
}

// Sanitize trims text, lowercases it, and strips every character that
// is not a lowercase letter or a space. The result is safe to insert
// into the fixed-alphabet prefix tree.
func Sanitize(text string) string {
	return sanitizeRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), "")
}

// CleanKeyword lowercases a search keyword and strips everything that
// is not a letter.
func CleanKeyword(word string) string {
	return keywordRegex.ReplaceAllString(strings.ToLower(word), "")
}

// PrefixNGrams produces every prefix of a token, from length 1 up to
// the token's length. For the token "paris" it yields: "p", "pa",
// "par", "pari", "paris".
func PrefixNGrams(token string) []string {
	tokenLen := len(token)
	if tokenLen == 0 {
		return make([]string, 0)
	}

	ngrams := make([]string, tokenLen)
	for i := 1; i <= tokenLen; i++ {
		ngrams[i-1] = token[:i]
	}
	return ngrams
}
