package services

import (
	"fmt"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driving"
)

// Ensure Resolver implements the driving port.
var _ driving.SubjectResolver = (*Resolver)(nil)

// Resolver derives the canonical search subject from a category row.
type Resolver struct{}

// NewResolver creates a subject resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the deepest non-empty, whitespace-trimmed category
// field. The scan follows domain.CategoryDepthOrder, a literal fixed
// priority list; it never concatenates fields and never falls back to
// a shallower field while a deeper one is non-empty.
func (r *Resolver) Resolve(row domain.CategoryRow) (string, error) {
	for _, col := range domain.CategoryDepthOrder {
		if v := row.Field(col); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: row %s has no category fields", domain.ErrNoSubject, row.Catid)
}
