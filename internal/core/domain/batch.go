package domain

import "time"

// RowStatus is the terminal state of one row within a batch.
type RowStatus string

const (
	// RowOK means the icon was emitted and passed validation.
	RowOK RowStatus = "ok"

	// RowFailed means remediation was exhausted; the row is still
	// written to the manifest with validation_passed=FALSE.
	RowFailed RowStatus = "failed"

	// RowSkipped means the row had no usable subject and produced no
	// output beyond a logged reason.
	RowSkipped RowStatus = "skipped"
)

// RowResult is the outcome of resolving one category row.
type RowResult struct {
	Catid   string
	Subject string
	Status  RowStatus

	// Decision is how the icon was obtained. Zero value when skipped.
	Decision Decision

	// Icon is the emitted icon. Zero value when skipped.
	Icon NormalizedIcon

	// Record is the manifest row. Zero value when skipped.
	Record ManifestRecord

	// Violations lists validator findings for failed rows.
	Violations []string
}

// BatchRun summarises one pipeline execution for the record store.
type BatchRun struct {
	RunID      string
	InputPath  string
	OutputDir  string
	Style      string
	StartedAt  time.Time
	FinishedAt time.Time

	Rows      int
	Sourced   int
	Generated int
	Failed    int
	Skipped   int
}
