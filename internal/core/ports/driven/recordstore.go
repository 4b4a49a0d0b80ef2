package driven

import (
	"context"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

// RecordStore mirrors batch runs and their manifest records into local
// history for later inspection. The CSV manifest stays the durable
// batch output; this store only answers "what happened on past runs".
type RecordStore interface {
	// SaveRun persists a run summary.
	SaveRun(ctx context.Context, run domain.BatchRun) error

	// SaveRecord persists one manifest record under a run.
	SaveRecord(ctx context.Context, runID string, record domain.ManifestRecord) error

	// ListRuns returns run summaries, most recent first.
	ListRuns(ctx context.Context, limit int) ([]domain.BatchRun, error)

	// Records returns the manifest records of a run in write order.
	Records(ctx context.Context, runID string) ([]domain.ManifestRecord, error)

	// Close releases the store.
	Close() error
}

// SettingsStore loads and saves the recognised configuration surface.
type SettingsStore interface {
	// Load returns persisted settings merged over defaults.
	Load() (domain.Settings, error)

	// Save persists settings.
	Save(settings domain.Settings) error
}
