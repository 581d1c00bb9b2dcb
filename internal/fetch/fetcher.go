package fetch

import (
	"context"
	"errors"

	"wikiharvest/internal/model"
)

// ErrNotFound is returned when the wiki has no article for the identifier.
// Callers distinguish it from transport failures with errors.Is; the crawler
// records the two cases as different outcomes.
var ErrNotFound = errors.New("page not found")

// Fetcher retrieves the raw markup of a wiki page.
type Fetcher interface {
	// Fetch returns the page markup for the identifier.
	// It returns an error wrapping ErrNotFound when the article does not
	// exist, and any other error for fetch failures.
	Fetch(ctx context.Context, id model.PageIdentifier) ([]byte, error)
}
