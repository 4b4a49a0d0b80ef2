// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RowReader: Loads taxonomy rows from the input table
//   - IconSource: Searches a third-party catalogue for vector icons
//   - ManifestWriter: Persists one provenance record per row
//
// # Optional Interfaces
//
// These can be nil - the pipeline degrades gracefully:
//
//   - Translator: Rewrites lookup terms into a target language
//   - RecordStore: Mirrors runs and records into local history
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or source package
package driven
