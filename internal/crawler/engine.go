package crawler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"wikiharvest/internal/extract"
	"wikiharvest/internal/fetch"
	"wikiharvest/internal/model"
)

// PageSource is the fetch-and-extract capability the engine pulls pages
// through. One call yields both the page text and its outbound article
// links, so each node costs a single fetch.
type PageSource interface {
	Page(ctx context.Context, id model.PageIdentifier) (text string, links []model.PageIdentifier, err error)
}

// Merger folds page text into the durable word-count store.
// Implementations must commit the store before returning so an interrupt
// never loses a completed page.
type Merger interface {
	Merge(text string) (map[string]int, error)
}

// Engine drives the crawl: a FIFO frontier of (identifier, depth) nodes,
// a visited set checked at dequeue time, and a fixed pacing delay between
// successive requests.
//
// The traversal is strictly sequential. No concurrent fetches happen, so
// the pacing delay reliably throttles the request rate to the wiki
// regardless of host parallelism.
type Engine struct {
	source PageSource
	merger Merger

	// maxDepth bounds the crawl. 0 means process only the seed.
	maxDepth int

	// pace is the blocking delay between successive fetched nodes.
	pace time.Duration

	logger *slog.Logger

	// sleep waits for the pacing interval; split out so tests can count
	// and time the waits without real sleeping.
	sleep func(ctx context.Context, d time.Duration) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxDepth sets the maximum crawl depth.
// 0 = only the seed page, 1 = seed plus directly linked pages, etc.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		e.maxDepth = depth
	}
}

// WithPace sets the delay enforced between successive page fetches.
func WithPace(d time.Duration) Option {
	return func(e *Engine) {
		e.pace = d
	}
}

// WithLogger sets the logger used for per-node progress and failures.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an Engine over the given page source and merger.
func NewEngine(source PageSource, merger Merger, opts ...Option) *Engine {
	e := &Engine{
		source:   source,
		merger:   merger,
		maxDepth: 1,
		pace:     time.Second,
		logger:   slog.Default(),
		sleep:    sleepContext,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// queueItem is a node in the crawl frontier.
type queueItem struct {
	id    model.PageIdentifier
	depth int
}

// Run crawls breadth-first from seed and returns the ordered report.
//
// Children are enqueued unconditionally and the visited set is checked at
// dequeue time: the frontier may transiently hold duplicates for a page
// reachable via multiple links, but no page is ever processed twice.
// Keeping the membership check on the dequeue side keeps enqueueing O(1).
//
// The pacing delay is charged immediately before each fetched node except
// the first. Skipped duplicates charge no delay, and no delay ever
// follows the final fetch.
//
// On context cancellation the partial report is returned alongside the
// context error; the word store already holds every completed merge.
func (e *Engine) Run(ctx context.Context, seed model.PageIdentifier) (*model.CrawlReport, error) {
	report := model.NewCrawlReport(seed, e.maxDepth, e.pace)
	start := time.Now()
	defer func() { report.Duration = time.Since(start) }()

	queue := []queueItem{{id: seed, depth: 0}}
	visited := make(map[model.PageIdentifier]bool)
	fetched := 0

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		if fetched > 0 && e.pace > 0 {
			if err := e.sleep(ctx, e.pace); err != nil {
				return report, err
			}
		}
		fetched++

		text, links, err := e.source.Page(ctx, item.id)
		if err != nil {
			report.Record(e.failure(item, err))
			continue
		}

		delta, err := e.merger.Merge(text)
		if err != nil {
			// Store write failures are I/O problems, not page problems,
			// but the node still failed to land in the store.
			e.logger.Error("merge failed", "page", item.id, "error", err)
			report.Record(model.NodeResult{
				Identifier: item.id,
				Depth:      item.depth,
				Outcome:    model.OutcomeFetchFailed,
				Detail:     err.Error(),
			})
			continue
		}

		e.logger.Debug("page processed",
			"page", item.id,
			"depth", item.depth,
			"words", len(delta),
			"links", len(links),
		)
		report.Record(model.NodeResult{
			Identifier:  item.id,
			Depth:       item.depth,
			Outcome:     model.OutcomeProcessed,
			WordsMerged: len(delta),
		})

		if item.depth < e.maxDepth {
			for _, link := range links {
				queue = append(queue, queueItem{id: link, depth: item.depth + 1})
			}
		}
	}

	return report, nil
}

// failure classifies a per-node error into a report entry.
// Missing articles and pages without a recognizable content area are
// expected conditions; both leave the crawl running.
func (e *Engine) failure(item queueItem, err error) model.NodeResult {
	outcome := model.OutcomeFetchFailed
	switch {
	case errors.Is(err, fetch.ErrNotFound):
		outcome = model.OutcomeNotFound
		e.logger.Warn("article not found", "page", item.id, "depth", item.depth)
	case errors.Is(err, extract.ErrNoContent):
		e.logger.Warn("no content extracted", "page", item.id, "depth", item.depth)
	default:
		e.logger.Warn("fetch failed", "page", item.id, "depth", item.depth, "error", err)
	}

	return model.NodeResult{
		Identifier: item.id,
		Depth:      item.depth,
		Outcome:    outcome,
		Detail:     err.Error(),
	}
}

// sleepContext blocks for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
