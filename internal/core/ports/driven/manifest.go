package driven

import "github.com/custodia-labs/iconsmith-cli/internal/core/domain"

// ManifestWriter persists one provenance record per Catid, append-only
// within a run. Implementations MUST validate each record and fail
// loudly with domain.ErrManifestIntegrity on a record that violates
// the source_icon traceability contract - the writer enforces the
// invariant, it does not merely report it.
type ManifestWriter interface {
	// Write appends one record.
	Write(record domain.ManifestRecord) error

	// Close flushes and releases the underlying file.
	Close() error
}

// IconWriter persists one vector-icon file per row, named exactly
// {Catid}.svg with no normalisation of the id.
type IconWriter interface {
	// WriteIcon writes the rendered icon for a Catid.
	WriteIcon(catid string, icon domain.NormalizedIcon) error
}

// OutputFactory opens the per-run output sinks under a directory,
// creating it when absent.
type OutputFactory interface {
	// NewManifestWriter opens manifest.csv for the run.
	NewManifestWriter(outDir string) (ManifestWriter, error)

	// NewIconWriter prepares the icon sink for the run.
	NewIconWriter(outDir string) (IconWriter, error)
}
