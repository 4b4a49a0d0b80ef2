package sources

import (
	"context"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
)

// Disabled is the no-lookup source. Every row falls through to the
// synthesizer, which is a valid and fully logged pipeline outcome.
type Disabled struct{}

var _ driven.IconSource = Disabled{}

// Type implements driven.IconSource.
func (Disabled) Type() string { return "disabled" }

// Enabled implements driven.IconSource.
func (Disabled) Enabled() bool { return false }

// Search implements driven.IconSource. Never called in practice; the
// orchestrator short-circuits disabled sources.
func (Disabled) Search(context.Context, string, int) ([]domain.Candidate, error) {
	return nil, nil
}
