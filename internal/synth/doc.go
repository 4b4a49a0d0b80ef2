// Package synth generates deterministic fallback icons when no remote
// candidate survives filtering.
//
// Geometry is derived entirely from the category identifier: the same
// Catid always yields the same icon, on any machine, with no wall-clock
// or global-state input. A collision with an earlier icon in the batch
// is resolved by reseeding with an attempt counter, which again is
// fully deterministic.
package synth
