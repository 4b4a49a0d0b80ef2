package domain

// Candidate is a third-party vector icon returned by a lookup, before
// normalisation. Candidates are ephemeral: they exist only while one
// row is being resolved and are discarded afterwards.
type Candidate struct {
	// Title is the source catalogue's name for the icon.
	Title string

	// SourceURL is the resolvable location the markup came from.
	SourceURL string

	// Markup is the raw vector markup as fetched. It may contain
	// fills, styles and other constructs the restyle engine strips;
	// sources never pre-filter on content.
	Markup string

	// Complexity is the pre-parse simplicity score: primitive count
	// plus path command count, lower is simpler. Filled by the ranker.
	Complexity int
}

// RankedCandidate is a candidate with the ranker's verdict attached.
type RankedCandidate struct {
	Candidate Candidate

	// Acceptable is false when a structural disqualifier was found
	// that restyling cannot fix.
	Acceptable bool

	// RejectReason is the machine-parseable reason when not
	// acceptable, empty otherwise.
	RejectReason string
}

// LookupReason is the machine-parseable reason code attached to an
// empty candidate set.
type LookupReason string

// Reason codes for lookups that produced no candidates.
const (
	LookupOK          LookupReason = ""
	LookupDisabled    LookupReason = "lookup_disabled"
	LookupTimeout     LookupReason = "lookup_timeout"
	LookupTransport   LookupReason = "lookup_transport_error"
	LookupNoResults   LookupReason = "lookup_no_results"
	LookupRateLimited LookupReason = "lookup_rate_limited"
)
