// Package sqlite mirrors batch history into a local database.
//
// The CSV manifest in the output directory stays the durable batch
// artifact; this store only answers "what happened on past runs" for
// the CLI and the MCP server.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/iconsmith-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RecordStore = (*Store)(nil)

// Store is the SQLite-backed run history.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a store at the specified data directory. If dataDir
// is empty, defaults to ~/.iconsmith/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".iconsmith", "data")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close implements driven.RecordStore.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveRun implements driven.RecordStore.
func (s *Store) SaveRun(ctx context.Context, run domain.BatchRun) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, input_path, output_dir, style, started_at, finished_at,
			row_count, sourced, generated, failed, skipped)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			finished_at = excluded.finished_at,
			row_count = excluded.row_count,
			sourced = excluded.sourced,
			generated = excluded.generated,
			failed = excluded.failed,
			skipped = excluded.skipped`,
		run.RunID, run.InputPath, run.OutputDir, run.Style,
		run.StartedAt, run.FinishedAt,
		run.Rows, run.Sourced, run.Generated, run.Failed, run.Skipped)
	if err != nil {
		return fmt.Errorf("saving run %s: %w", run.RunID, err)
	}
	return nil
}

// SaveRecord implements driven.RecordStore.
func (s *Store) SaveRecord(ctx context.Context, runID string, record domain.ManifestRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (run_id, catid, title_selected, concept_notes, primitives_used,
			path_hash, width, height, stroke_width, color_hex, validation_passed, source_icon)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, record.Catid, record.TitleSelected, record.ConceptNotes,
		strings.Join(record.PrimitivesUsed, ","),
		record.PathHash, record.Width, record.Height, record.StrokeWidth,
		record.ColorHex, record.ValidationPassed, record.SourceIcon)
	if err != nil {
		return fmt.Errorf("saving record %s: %w", record.Catid, err)
	}
	return nil
}

// ListRuns implements driven.RecordStore.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.BatchRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, input_path, output_dir, style, started_at, finished_at,
			row_count, sourced, generated, failed, skipped
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.BatchRun
	for rows.Next() {
		var run domain.BatchRun
		if err := rows.Scan(&run.RunID, &run.InputPath, &run.OutputDir, &run.Style,
			&run.StartedAt, &run.FinishedAt,
			&run.Rows, &run.Sourced, &run.Generated, &run.Failed, &run.Skipped); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Records implements driven.RecordStore.
func (s *Store) Records(ctx context.Context, runID string) ([]domain.ManifestRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT catid, title_selected, concept_notes, primitives_used, path_hash,
			width, height, stroke_width, color_hex, validation_passed, source_icon
		FROM records WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var records []domain.ManifestRecord
	for rows.Next() {
		var r domain.ManifestRecord
		var prims string
		if err := rows.Scan(&r.Catid, &r.TitleSelected, &r.ConceptNotes, &prims, &r.PathHash,
			&r.Width, &r.Height, &r.StrokeWidth, &r.ColorHex, &r.ValidationPassed, &r.SourceIcon); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if prims != "" {
			r.PrimitivesUsed = strings.Split(prims, ",")
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// migrate applies pending .up.sql migrations in version order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}
