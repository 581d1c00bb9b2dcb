package words

import "fmt"

// Aggregator merges article text into the durable word-count store.
//
// Each Merge commits the store to disk before returning, so an interrupt
// mid-crawl never loses a completed page: the on-disk state always
// corresponds to the last finished merge.
type Aggregator struct {
	store *Store
}

// NewAggregator creates an Aggregator over a loaded store.
func NewAggregator(store *Store) *Aggregator {
	return &Aggregator{store: store}
}

// Merge tokenizes text, increments the store's count by one per token
// occurrence, saves the store, and returns the applied delta.
// Unseen words start at zero, so a first occurrence sets the count to one.
func (a *Aggregator) Merge(text string) (map[string]int, error) {
	delta := make(map[string]int)
	for _, word := range Tokenize(text) {
		delta[word]++
	}

	for word, n := range delta {
		a.store.add(word, n)
	}

	if err := a.store.Save(); err != nil {
		return nil, fmt.Errorf("failed to persist merge: %w", err)
	}

	return delta, nil
}

// Store returns the underlying store.
func (a *Aggregator) Store() *Store {
	return a.store
}
