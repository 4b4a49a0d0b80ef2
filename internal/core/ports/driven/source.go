package driven

import (
	"context"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

// IconSource searches a third-party catalogue for vector icons.
// Each source type (iconify, github, google, disabled) implements this
// interface.
type IconSource interface {
	// Type returns the source type identifier.
	Type() string

	// Enabled reports whether the source can produce candidates at
	// all. The disabled source returns false; callers log the outcome
	// instead of treating it as a failure.
	Enabled() bool

	// Search returns up to max raw candidates for a query, in the
	// order the catalogue ranked them. The result is finite and not
	// restartable across calls.
	//
	// Candidates are returned raw: fills, styles and extra markup are
	// normalised later, never pre-filtered here. Errors are transport
	// level only; the batch service converts them into an empty set
	// with a recorded reason and never lets them escape the row.
	Search(ctx context.Context, query string, max int) ([]domain.Candidate, error)
}

// SourceFactory creates an icon source from settings.
type SourceFactory interface {
	// Create builds the source named by settings.SourceType.
	// Returns domain.ErrUnsupportedType for unknown types.
	Create(settings domain.Settings) (IconSource, error)

	// Types lists the registered source type identifiers.
	Types() []string
}
