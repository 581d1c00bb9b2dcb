package scrape

import (
	"context"

	"wikiharvest/internal/extract"
	"wikiharvest/internal/fetch"
	"wikiharvest/internal/model"
)

// Scraper fetches wiki pages and extracts their structured content.
// It hides the fetch/parse split from callers: every method takes a page
// identifier and returns extracted data.
type Scraper struct {
	fetcher   fetch.Fetcher
	extractor *extract.Extractor

	// prefix is the internal-article path prefix used to filter links.
	prefix string
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithArticlePrefix overrides the internal-article path prefix used when
// filtering links (default "/wiki/").
func WithArticlePrefix(prefix string) Option {
	return func(s *Scraper) {
		s.prefix = prefix
	}
}

// New creates a Scraper over the given fetcher.
func New(fetcher fetch.Fetcher, opts ...Option) *Scraper {
	s := &Scraper{
		fetcher:   fetcher,
		extractor: extract.NewExtractor(),
		prefix:    extract.DefaultArticlePrefix,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Summary fetches the page and returns its first meaningful paragraph.
func (s *Scraper) Summary(ctx context.Context, id model.PageIdentifier) (string, error) {
	markup, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return "", err
	}
	return s.extractor.Summary(string(markup))
}

// Table fetches the page and returns the raw markup of its nth table,
// 1-based.
func (s *Scraper) Table(ctx context.Context, id model.PageIdentifier, n int) (string, error) {
	markup, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return "", err
	}
	return s.extractor.Table(string(markup), n)
}

// TableRows fetches the page and returns the nth table as a rows-by-cells
// text matrix.
func (s *Scraper) TableRows(ctx context.Context, id model.PageIdentifier, n int) ([][]string, error) {
	tableMarkup, err := s.Table(ctx, id, n)
	if err != nil {
		return nil, err
	}
	return s.extractor.TableRows(tableMarkup)
}

// FullText fetches the page and returns its full body text.
func (s *Scraper) FullText(ctx context.Context, id model.PageIdentifier) (string, error) {
	markup, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return "", err
	}
	return s.extractor.FullText(string(markup))
}

// InternalLinks fetches the page and returns its outbound same-site
// article identifiers, filtered but not deduplicated.
func (s *Scraper) InternalLinks(ctx context.Context, id model.PageIdentifier) ([]model.PageIdentifier, error) {
	markup, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	hrefs, err := s.extractor.RawLinks(string(markup))
	if err != nil {
		return nil, err
	}
	return extract.FilterLinks(hrefs, s.prefix), nil
}

// Page fetches a page once and returns both its full text and its filtered
// outbound links. The crawl engine uses this so each node costs a single
// fetch.
func (s *Scraper) Page(ctx context.Context, id model.PageIdentifier) (string, []model.PageIdentifier, error) {
	markup, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return "", nil, err
	}

	text, err := s.extractor.FullText(string(markup))
	if err != nil {
		return "", nil, err
	}

	hrefs, err := s.extractor.RawLinks(string(markup))
	if err != nil {
		return "", nil, err
	}

	return text, extract.FilterLinks(hrefs, s.prefix), nil
}
