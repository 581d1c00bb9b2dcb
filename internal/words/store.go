package words

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store is the durable word→count mapping. It persists as a flat JSON
// document (UTF-8, keys sorted, indented) so diffs between runs stay
// readable. The whole document is read at load time and rewritten in full
// on each save.
//
// The store is single-writer by design: within one process only the crawl
// thread touches it, and concurrent external processes writing the same
// file are an unsupported scenario.
type Store struct {
	// path is the JSON document location.
	path string

	// counts is the in-memory word→count mapping.
	counts map[string]int

	// recovered is true when the last Load found a corrupt document and
	// degraded to an empty store.
	recovered bool
}

// NewStore creates a Store backed by the document at path.
// Call Load before merging.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		counts: make(map[string]int),
	}
}

// Load reads the document into memory. A missing file yields an empty
// store. A corrupt file also yields an empty store and sets Recovered;
// corruption is never fatal because the next Save rewrites a valid
// document from scratch.
func (s *Store) Load() error {
	s.counts = make(map[string]int)
	s.recovered = false

	data, err := os.ReadFile(s.path) //nolint:gosec // Store path comes from configuration
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read word-count store %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &s.counts); err != nil {
		s.counts = make(map[string]int)
		s.recovered = true
		return nil
	}

	return nil
}

// Save rewrites the full document. Keys come out sorted because
// encoding/json orders map keys deterministically.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.counts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode word-count store: %w", err)
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write word-count store %s: %w", s.path, err)
	}

	return nil
}

// Recovered reports whether the last Load degraded a corrupt document to
// an empty store.
func (s *Store) Recovered() bool {
	return s.recovered
}

// Count returns the stored count for word.
func (s *Store) Count(word string) int {
	return s.counts[word]
}

// Len returns the number of distinct words in the store.
func (s *Store) Len() int {
	return len(s.counts)
}

// Counts returns a copy of the word→count mapping.
func (s *Store) Counts() map[string]int {
	out := make(map[string]int, len(s.counts))
	for w, c := range s.counts {
		out[w] = c
	}
	return out
}

// add increments the count for word by n. Counts only ever grow.
func (s *Store) add(word string, n int) {
	s.counts[word] += n
}
