package domain

import (
	"fmt"
	"strings"
)

// ManifestColumns is the fixed manifest header, in emission order.
var ManifestColumns = []string{
	"Catid",
	"title_selected",
	"concept_notes",
	"primitives_used",
	"path_hash",
	"width",
	"height",
	"stroke_width",
	"color_hex",
	"validation_passed",
	"source_icon",
}

// ManifestRecord is the durable provenance row written once per Catid.
type ManifestRecord struct {
	Catid            string
	TitleSelected    string
	ConceptNotes     string
	PrimitivesUsed   []string
	PathHash         string
	Width            int
	Height           int
	StrokeWidth      int
	ColorHex         string
	ValidationPassed bool
	SourceIcon       string
}

// Validate enforces the record invariants the writer must refuse to
// violate: a present Catid and the source_icon traceability contract.
func (r ManifestRecord) Validate() error {
	if strings.TrimSpace(r.Catid) == "" {
		return fmt.Errorf("%w: empty Catid", ErrManifestIntegrity)
	}
	switch r.SourceIcon {
	case "":
		return fmt.Errorf("%w: empty source_icon for %s", ErrManifestIntegrity, r.Catid)
	case GeneratedMarker:
		if strings.TrimSpace(r.ConceptNotes) == "" {
			return fmt.Errorf("%w: generated icon %s without concept notes", ErrManifestIntegrity, r.Catid)
		}
	}
	return nil
}

// Values returns the CSV cell values in ManifestColumns order.
// Booleans serialise as upper-case literals.
func (r ManifestRecord) Values() []string {
	passed := "FALSE"
	if r.ValidationPassed {
		passed = "TRUE"
	}
	return []string{
		r.Catid,
		r.TitleSelected,
		r.ConceptNotes,
		strings.Join(r.PrimitivesUsed, ","),
		r.PathHash,
		fmt.Sprintf("%d", r.Width),
		fmt.Sprintf("%d", r.Height),
		fmt.Sprintf("%d", r.StrokeWidth),
		r.ColorHex,
		passed,
		r.SourceIcon,
	}
}
