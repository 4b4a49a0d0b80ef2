package domain

import "fmt"

// DecisionPath tags how a row's icon was obtained.
// Modelled as a closed variant so every transition is handled
// explicitly rather than through scattered booleans.
type DecisionPath string

const (
	// DecisionSourced means a remote candidate was restyled.
	DecisionSourced DecisionPath = "sourced"

	// DecisionGenerated means the fallback synthesizer produced the icon.
	DecisionGenerated DecisionPath = "generated"
)

// GeneratedMarker is the literal written to source_icon for
// synthesized icons.
const GeneratedMarker = "generated"

// Decision records how one row's icon came to be, with enough detail
// to reconstruct the choice later.
type Decision struct {
	Path DecisionPath

	// SourceURL is the candidate's URL. Set iff Path is DecisionSourced.
	SourceURL string

	// Reason explains why synthesis was used (reason code plus free
	// text). Set iff Path is DecisionGenerated.
	Reason string
}

// Sourced builds a sourced decision.
func Sourced(url string) Decision {
	return Decision{Path: DecisionSourced, SourceURL: url}
}

// Generated builds a generated decision with the mandatory reason.
func Generated(reason string) Decision {
	return Decision{Path: DecisionGenerated, Reason: reason}
}

// SourceIcon returns the manifest source_icon value for the decision.
func (d Decision) SourceIcon() string {
	if d.Path == DecisionSourced {
		return d.SourceURL
	}
	return GeneratedMarker
}

// Validate enforces the traceability invariant: sourced decisions
// carry a URL, generated decisions carry a reason.
func (d Decision) Validate() error {
	switch d.Path {
	case DecisionSourced:
		if d.SourceURL == "" || d.SourceURL == GeneratedMarker {
			return fmt.Errorf("%w: sourced decision without source URL", ErrManifestIntegrity)
		}
	case DecisionGenerated:
		if d.Reason == "" {
			return fmt.Errorf("%w: generated decision without reason", ErrManifestIntegrity)
		}
	default:
		return fmt.Errorf("%w: decision path %q", ErrManifestIntegrity, d.Path)
	}
	return nil
}
