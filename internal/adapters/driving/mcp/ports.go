package mcp

import (
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Resolver resolves a category row to its lookup subject.
	Resolver driving.SubjectResolver

	// Maker runs the single-row icon pipeline.
	Maker driving.IconMaker

	// Source answers raw candidate searches. Optional; without it the
	// search_icons tool is not registered.
	Source driven.IconSource
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Resolver == nil {
		return ErrMissingResolver
	}
	if p.Maker == nil {
		return ErrMissingIconMaker
	}
	return nil
}
