package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSubject indicates a row has no usable category field.
	// Fatal for the row; the row is skipped with a logged reason and
	// never silently rendered as a blank icon.
	ErrNoSubject = errors.New("no usable subject")

	// ErrLookupFailed indicates a remote lookup timed out, was disabled
	// or hit a transport error. Recovered locally by falling through to
	// fallback synthesis.
	ErrLookupFailed = errors.New("icon lookup failed")

	// ErrRateLimited indicates the upstream source throttled the
	// lookup. Always wrapped inside ErrLookupFailed; kept separate so
	// the batch can record a distinct reason code.
	ErrRateLimited = errors.New("rate limited")

	// ErrRestyleTooTrivial indicates that after simplification fewer
	// than the minimum number of primitives remained. Recovered locally
	// via fallback synthesis.
	ErrRestyleTooTrivial = errors.New("restyled icon too trivial")

	// ErrUniquenessCollision indicates a path hash already present in
	// the batch. Recovered by reseeding; surfaced as a row failure only
	// when the retry budget is exhausted.
	ErrUniquenessCollision = errors.New("path hash collision")

	// ErrManifestIntegrity indicates an attempted manifest write that
	// violates the source_icon traceability contract. Fatal for the
	// whole batch: it signals a pipeline defect, not a row problem.
	ErrManifestIntegrity = errors.New("manifest integrity violation")

	// ErrUnsupportedType indicates an unknown icon source type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
