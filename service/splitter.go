package service

import (
	"errors"
	"log"
	"strings"
)

var errNoSentences = errors.New("no sentences produced from non-empty text")

var sentenceEnders = []string{". ", "! ", "? ", ".\n", "!\n", "?\n"}

// SplitSentences breaks raw text into an ordered sequence of sentences. It
// never drops non-whitespace content and never returns an error: when the
// primary splitter produces nothing for non-empty input it degrades to naive
// period splitting and logs a warning.
func SplitSentences(text string) []string {
	sentences, err := splitBySentenceEnders(text)
	if err != nil {
		log.Printf("Warning: sentence splitting failed (%v), falling back to period splitting", err)
		return splitByPeriods(text)
	}
	return sentences
}

// splitBySentenceEnders scans the text rune by rune and closes a sentence on
// terminal punctuation followed by whitespace. Remaining text becomes the
// final sentence.
func splitBySentenceEnders(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var sentences []string
	current := strings.Builder{}

	for i := 0; i < len(text); i++ {
		current.WriteByte(text[i])

		for _, ender := range sentenceEnders {
			if strings.HasSuffix(current.String(), ender) {
				sentences = append(sentences, strings.TrimSpace(current.String()))
				current.Reset()
				break
			}
		}
	}

	if trailing := strings.TrimSpace(current.String()); trailing != "" {
		sentences = append(sentences, trailing)
	}

	if len(sentences) == 0 {
		return nil, errNoSentences
	}
	return sentences, nil
}

// splitByPeriods is the degraded fallback: split on literal periods and
// re-append one to each non-empty fragment. Abbreviations and numbers produce
// degenerate sentences here; that imprecision is accepted.
func splitByPeriods(text string) []string {
	var sentences []string
	for _, fragment := range strings.Split(text, ".") {
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		sentences = append(sentences, strings.TrimSpace(fragment)+".")
	}
	return sentences
}
