// Package domain defines the core business entities for Iconsmith.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CategoryRow: One taxonomy row from the input CSV
//   - Candidate: A third-party vector icon before normalisation
//   - NormalizedIcon: A house-styled icon ready for emission
//   - ManifestRecord: The provenance record written per row
//   - HouseStyle: The fixed canvas, stroke and complexity rules
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
