package driven

import (
	"context"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

// RowReader loads taxonomy rows from the input table.
// Rows keep their input order; the pipeline's reproducibility
// guarantees are stated relative to that order.
type RowReader interface {
	// Read returns every row of the table. Rows failing basic shape
	// checks (missing Catid column) cause an error; per-row semantic
	// problems are left to the resolver.
	Read(ctx context.Context, path string) ([]domain.CategoryRow, error)
}
