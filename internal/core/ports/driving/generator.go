package driving

import (
	"context"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

// GenerateOptions configures one batch run.
type GenerateOptions struct {
	// CSVPath is the input taxonomy table.
	CSVPath string

	// OutDir receives {Catid}.svg files and manifest.csv.
	OutDir string

	// Settings is the effective configuration for the run.
	Settings domain.Settings
}

// RowEvent reports one finished row for progress display.
type RowEvent struct {
	// Index is the zero-based row position; Total the batch size.
	Index int
	Total int

	Result domain.RowResult
}

// ProgressFunc receives row events as they complete. May be nil.
// Called from the batch goroutine; implementations must be fast or
// hand off to their own loop.
type ProgressFunc func(RowEvent)

// BatchGenerator runs the full pipeline over a taxonomy table.
type BatchGenerator interface {
	// Generate resolves every row and writes icons plus manifest.
	// Cancellation via ctx stops issuing new lookups; in-flight rows
	// complete and validated records flush before return.
	Generate(ctx context.Context, opts GenerateOptions, progress ProgressFunc) (*domain.BatchRun, error)
}

// SubjectResolver exposes subject resolution to driving adapters (the
// MCP server offers it as a standalone tool).
type SubjectResolver interface {
	// Resolve returns the deepest non-empty category field.
	Resolve(row domain.CategoryRow) (string, error)
}

// IconMaker produces a single validated icon outside a batch, used by
// the MCP generate_icon tool.
type IconMaker interface {
	Make(ctx context.Context, catid, subject string) (domain.RowResult, error)
}
