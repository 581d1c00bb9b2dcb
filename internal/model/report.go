package model

import (
	"time"

	"github.com/google/uuid"
)

// Outcome describes what happened when the crawler processed a single node.
type Outcome string

// Node outcomes recorded in a CrawlReport.
const (
	// OutcomeProcessed means the page was fetched, extracted, and its
	// words merged into the store.
	OutcomeProcessed Outcome = "processed"

	// OutcomeFetchFailed means a network or I/O failure prevented
	// fetching the page. The crawl continues with the next node.
	OutcomeFetchFailed Outcome = "fetch-failed"

	// OutcomeNotFound means the wiki has no article for the identifier.
	OutcomeNotFound Outcome = "not-found"
)

// NodeResult records the outcome for one dequeued crawl node.
type NodeResult struct {
	// Identifier is the page the node refers to.
	Identifier PageIdentifier `json:"identifier"`

	// Depth is the number of link hops from the seed page.
	Depth int `json:"depth"`

	// Outcome is what happened when the node was processed.
	Outcome Outcome `json:"outcome"`

	// Detail carries the failure message for non-processed outcomes.
	Detail string `json:"detail,omitempty"`

	// WordsMerged is the number of distinct words merged from this page.
	// Zero for failed nodes.
	WordsMerged int `json:"words_merged,omitempty"`
}

// CrawlReport is the ordered record of a single crawl run.
// Results appear in processing order; each identifier appears at most once
// because the engine deduplicates at dequeue time.
type CrawlReport struct {
	// RunID uniquely identifies this crawl run.
	RunID string `json:"run_id"`

	// Seed is the page the crawl started from.
	Seed PageIdentifier `json:"seed"`

	// MaxDepth is the configured depth bound for the run.
	MaxDepth int `json:"max_depth"`

	// Pace is the configured delay between processed nodes.
	Pace time.Duration `json:"pace"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is the total wall-clock time of the run.
	Duration time.Duration `json:"duration"`

	// Results lists every processed node in order.
	Results []NodeResult `json:"results"`
}

// NewCrawlReport creates an empty report for a run starting at seed.
func NewCrawlReport(seed PageIdentifier, maxDepth int, pace time.Duration) *CrawlReport {
	return &CrawlReport{
		RunID:     uuid.NewString(),
		Seed:      seed,
		MaxDepth:  maxDepth,
		Pace:      pace,
		StartedAt: time.Now(),
		Results:   make([]NodeResult, 0),
	}
}

// Record appends a node result to the report.
func (r *CrawlReport) Record(res NodeResult) {
	r.Results = append(r.Results, res)
}

// Processed returns the number of successfully processed nodes.
func (r *CrawlReport) Processed() int {
	return r.countByOutcome(OutcomeProcessed)
}

// Failed returns the number of nodes that could not be processed,
// counting both fetch failures and missing articles.
func (r *CrawlReport) Failed() int {
	return r.countByOutcome(OutcomeFetchFailed) + r.countByOutcome(OutcomeNotFound)
}

// NotFound returns the number of nodes whose article did not exist.
func (r *CrawlReport) NotFound() int {
	return r.countByOutcome(OutcomeNotFound)
}

// FetchFailed returns the number of nodes that failed with a fetch error.
func (r *CrawlReport) FetchFailed() int {
	return r.countByOutcome(OutcomeFetchFailed)
}

func (r *CrawlReport) countByOutcome(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}
