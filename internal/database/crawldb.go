package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"wikiharvest/internal/model"
)

// CrawlDB stores crawl run history in a single SQLite file.
//
// Design decision: We keep one database file for all runs rather than a
// file per run. Runs are small (one row plus a handful of node rows), and
// a single file keeps history queries and backups trivial.
type CrawlDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures CrawlDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a CrawlDB at the specified directory.
func Open(dbDir string, opts Options) (*CrawlDB, error) {
	dbPath := filepath.Join(dbDir, "wikiharvest.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports only one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cdb := &CrawlDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := cdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return cdb, nil
}

// Close closes the database connection.
func (cdb *CrawlDB) Close() error {
	return cdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (cdb *CrawlDB) createTables() error {
	schema := `
	-- One row per crawl run
	CREATE TABLE IF NOT EXISTS crawl_runs (
		run_id TEXT PRIMARY KEY,
		seed TEXT NOT NULL,
		max_depth INTEGER NOT NULL,
		pace_ms INTEGER NOT NULL,
		started_at DATETIME NOT NULL,
		duration_ms INTEGER NOT NULL,
		processed INTEGER NOT NULL,
		failed INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_seed ON crawl_runs(seed);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON crawl_runs(started_at);

	-- One row per dequeued node, in processing order
	CREATE TABLE IF NOT EXISTS crawl_nodes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES crawl_runs(run_id),
		position INTEGER NOT NULL,
		identifier TEXT NOT NULL,
		depth INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		detail TEXT,
		words_merged INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_nodes_run ON crawl_nodes(run_id);
	CREATE INDEX IF NOT EXISTS idx_nodes_identifier ON crawl_nodes(identifier);
	`

	_, err := cdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveCrawlReport stores a completed crawl run with all node outcomes.
func (cdb *CrawlDB) SaveCrawlReport(ctx context.Context, report *model.CrawlReport) error {
	tx, err := cdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO crawl_runs (run_id, seed, max_depth, pace_ms, started_at, duration_ms, processed, failed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		report.RunID,
		report.Seed.String(),
		report.MaxDepth,
		report.Pace.Milliseconds(),
		report.StartedAt.UTC().Format("2006-01-02 15:04:05"),
		report.Duration.Milliseconds(),
		report.Processed(),
		report.Failed(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert crawl run: %w", err)
	}

	for i, res := range report.Results {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO crawl_nodes (run_id, position, identifier, depth, outcome, detail, words_merged)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			report.RunID,
			i,
			res.Identifier.String(),
			res.Depth,
			string(res.Outcome),
			res.Detail,
			res.WordsMerged,
		)
		if err != nil {
			return fmt.Errorf("failed to insert crawl node %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit crawl report: %w", err)
	}

	return nil
}

// GetCrawlReport retrieves a stored run by its ID.
// Returns nil without error when the run does not exist.
func (cdb *CrawlDB) GetCrawlReport(ctx context.Context, runID string) (*model.CrawlReport, error) {
	var (
		report     model.CrawlReport
		seed       string
		paceMS     int64
		startedAt  string
		durationMS int64
	)

	err := cdb.db.QueryRowContext(ctx, `
		SELECT run_id, seed, max_depth, pace_ms, started_at, duration_ms
		FROM crawl_runs WHERE run_id = ?`, runID).Scan(
		&report.RunID,
		&seed,
		&report.MaxDepth,
		&paceMS,
		&startedAt,
		&durationMS,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get crawl run: %w", err)
	}

	report.Seed = model.PageIdentifier(seed)
	report.Pace = time.Duration(paceMS) * time.Millisecond
	report.Duration = time.Duration(durationMS) * time.Millisecond
	report.StartedAt = parseTimestamp(startedAt)

	rows, err := cdb.db.QueryContext(ctx, `
		SELECT identifier, depth, outcome, detail, words_merged
		FROM crawl_nodes WHERE run_id = ?
		ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query crawl nodes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			res     model.NodeResult
			ident   string
			outcome string
			detail  sql.NullString
		)
		if err := rows.Scan(&ident, &res.Depth, &outcome, &detail, &res.WordsMerged); err != nil {
			return nil, fmt.Errorf("failed to scan crawl node: %w", err)
		}
		res.Identifier = model.PageIdentifier(ident)
		res.Outcome = model.Outcome(outcome)
		res.Detail = detail.String
		report.Results = append(report.Results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &report, nil
}

// RunSummary contains summary information about a stored crawl run.
type RunSummary struct {
	// RunID is the run's unique identifier.
	RunID string

	// Seed is the page the run started from.
	Seed model.PageIdentifier

	// StartedAt is when the run began.
	StartedAt time.Time

	// Processed is the number of successfully processed nodes.
	Processed int

	// Failed is the number of failed nodes.
	Failed int
}

// ListRuns returns summaries of stored runs, most recent first.
func (cdb *CrawlDB) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := cdb.db.QueryContext(ctx, `
		SELECT run_id, seed, started_at, processed, failed
		FROM crawl_runs
		ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var (
			run       RunSummary
			seed      string
			startedAt string
		)
		if err := rows.Scan(&run.RunID, &seed, &startedAt, &run.Processed, &run.Failed); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Seed = model.PageIdentifier(seed)
		run.StartedAt = parseTimestamp(startedAt)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple
// formats. SQLite may return timestamps in different formats depending on
// configuration. If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
