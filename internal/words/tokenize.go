package words

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// boundaryPunctuation is the fixed set of characters stripped from both
// ends of a raw token. Interior punctuation (contractions like "don't",
// hyphenated words like "mid-air") is preserved.
const boundaryPunctuation = ".,!?;:()[]\"'"

// Tokenize splits text on whitespace runs and normalizes each token:
// Unicode NFC normalization, boundary punctuation stripped from both ends,
// lowercased. Tokens that become empty after stripping are discarded.
//
// The policy must stay stable: word counts accumulate across runs, so any
// change here would skew the store's historical data.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))

	for _, raw := range fields {
		word := norm.NFC.String(raw)
		word = strings.Trim(word, boundaryPunctuation)
		word = strings.ToLower(word)
		if word == "" {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}
