package analysis

import (
	"errors"
	"fmt"
	"sort"
)

// Mode selects which column a comparison is sorted by.
type Mode string

const (
	// ModeArticle sorts by how common each word is in the harvested
	// wiki text. This surfaces the wiki's own vocabulary.
	ModeArticle Mode = "article"

	// ModeLanguage sorts by how common each word is in general English.
	// This shows how the wiki uses everyday words.
	ModeLanguage Mode = "language"
)

// ErrEmptyStore is returned when the word-count store holds no words.
// Running analyze before any count or crawl is a user mistake, not a bug.
var ErrEmptyStore = errors.New("word store is empty: run crawl or count first")

// ErrUnknownMode is returned for a mode other than article or language.
var ErrUnknownMode = errors.New("unknown analysis mode: use article or language")

// Row is one word in a frequency comparison.
type Row struct {
	// Word is the normalized lowercase word.
	Word string

	// WikiRaw is the absolute occurrence count in the store.
	WikiRaw int

	// WikiNorm is WikiRaw divided by the store's maximum count, in [0,1].
	WikiNorm float64

	// LangNorm is the word's general-English frequency divided by the
	// table's maximum, in [0,1]. Zero for words absent from the table.
	LangNorm float64
}

// Compare builds the frequency comparison between the harvested counts
// and general English.
//
// Both columns are normalized by their own maximum so a niche wiki and
// a billion-word corpus land on the same [0,1] scale. The row set is the
// union of both vocabularies; a word missing from one side scores 0 in
// that column. Rows are sorted descending by the mode's column, ties
// broken alphabetically so output is deterministic, and trimmed to topN.
func Compare(counts map[string]int, mode Mode, topN int) ([]Row, error) {
	if len(counts) == 0 {
		return nil, ErrEmptyStore
	}
	if mode != ModeArticle && mode != ModeLanguage {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if topN <= 0 {
		return nil, nil
	}

	wikiMax := 0
	for _, n := range counts {
		if n > wikiMax {
			wikiMax = n
		}
	}

	langMax := 0.0
	for _, f := range englishFrequencies {
		if f > langMax {
			langMax = f
		}
	}

	words := make(map[string]bool, len(counts)+len(englishFrequencies))
	for w := range counts {
		words[w] = true
	}
	for w := range englishFrequencies {
		words[w] = true
	}

	rows := make([]Row, 0, len(words))
	for w := range words {
		rows = append(rows, Row{
			Word:     w,
			WikiRaw:  counts[w],
			WikiNorm: float64(counts[w]) / float64(wikiMax),
			LangNorm: englishFrequencies[w] / langMax,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i].WikiNorm, rows[j].WikiNorm
		if mode == ModeLanguage {
			a, b = rows[i].LangNorm, rows[j].LangNorm
		}
		if a != b {
			return a > b
		}
		return rows[i].Word < rows[j].Word
	})

	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows, nil
}
