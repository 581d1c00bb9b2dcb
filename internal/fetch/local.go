package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"wikiharvest/internal/model"
)

// LocalFetcher reads saved page markup from a directory instead of the
// network. The identifier resolves to a deterministic filename:
// "Moon_Lord" maps to <dir>/Moon_Lord.html.
type LocalFetcher struct {
	// dir is the directory holding saved pages.
	dir string
}

// NewLocalFetcher creates a LocalFetcher reading from dir.
func NewLocalFetcher(dir string) *LocalFetcher {
	return &LocalFetcher{dir: dir}
}

// Fetch reads the saved markup for the identifier.
// A missing file maps to ErrNotFound, mirroring a 404 in web mode.
func (f *LocalFetcher) Fetch(_ context.Context, id model.PageIdentifier) ([]byte, error) {
	path := filepath.Join(f.dir, id.String()+".html")

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from a normalized identifier
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read local page %s: %w", path, err)
	}

	return data, nil
}
