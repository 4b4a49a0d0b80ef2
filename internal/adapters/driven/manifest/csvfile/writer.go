// Package csvfile persists the batch outputs: one SVG per Catid and
// the provenance manifest.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
)

// Ensure the adapters implement their ports.
var (
	_ driven.ManifestWriter = (*ManifestWriter)(nil)
	_ driven.IconWriter     = (*IconWriter)(nil)
	_ driven.OutputFactory  = Factory{}
)

// ManifestName is the manifest filename within the output directory.
const ManifestName = "manifest.csv"

// ManifestWriter appends provenance records to manifest.csv. Every
// record is validated before a single byte hits the file; a violation
// is returned as domain.ErrManifestIntegrity and nothing is written.
type ManifestWriter struct {
	f *os.File
	w *csv.Writer
}

// NewManifestWriter creates manifest.csv under outDir, truncating a
// previous run's file, and writes the header.
func NewManifestWriter(outDir string) (*ManifestWriter, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(filepath.Join(outDir, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("create manifest: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(domain.ManifestColumns); err != nil {
		f.Close()
		return nil, fmt.Errorf("write manifest header: %w", err)
	}
	return &ManifestWriter{f: f, w: w}, nil
}

// Write implements driven.ManifestWriter.
func (m *ManifestWriter) Write(record domain.ManifestRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if err := m.w.Write(record.Values()); err != nil {
		return fmt.Errorf("write manifest row %s: %w", record.Catid, err)
	}
	// Flush per record so an interrupted batch leaves every completed
	// row on disk.
	m.w.Flush()
	return m.w.Error()
}

// Close implements driven.ManifestWriter.
func (m *ManifestWriter) Close() error {
	m.w.Flush()
	if err := m.w.Error(); err != nil {
		m.f.Close()
		return err
	}
	return m.f.Close()
}

// IconWriter writes {Catid}.svg files. The id is used verbatim as the
// filename stem, no normalisation.
type IconWriter struct {
	dir string
}

// NewIconWriter prepares outDir for icon files.
func NewIconWriter(outDir string) (*IconWriter, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &IconWriter{dir: outDir}, nil
}

// WriteIcon implements driven.IconWriter.
func (w *IconWriter) WriteIcon(catid string, icon domain.NormalizedIcon) error {
	if catid == "" {
		return fmt.Errorf("%w: empty catid", domain.ErrInvalidInput)
	}
	path := filepath.Join(w.dir, catid+".svg")
	if err := os.WriteFile(path, []byte(icon.SVG()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Factory opens the per-run output sinks.
type Factory struct{}

// NewFactory returns the file-based output factory.
func NewFactory() Factory { return Factory{} }

// NewManifestWriter implements driven.OutputFactory.
func (Factory) NewManifestWriter(outDir string) (driven.ManifestWriter, error) {
	return NewManifestWriter(outDir)
}

// NewIconWriter implements driven.OutputFactory.
func (Factory) NewIconWriter(outDir string) (driven.IconWriter, error) {
	return NewIconWriter(outDir)
}
