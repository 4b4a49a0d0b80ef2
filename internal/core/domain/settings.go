package domain

// Settings is the recognised configuration surface for a batch run.
// Values come from the config file with flag overrides on top.
type Settings struct {
	// LookupEnabled toggles remote icon sourcing. When false every row
	// goes straight to fallback synthesis, a valid and fully logged
	// outcome.
	LookupEnabled bool

	// SourceType selects the icon source adapter ("iconify", "github",
	// "google", "disabled").
	SourceType string

	// SourceTimeoutSeconds is the hard per-lookup timeout.
	SourceTimeoutSeconds int

	// SourceMaxCandidates caps how many candidates a lookup returns.
	SourceMaxCandidates int

	// Style is the stroke preset name (see StyleVariant).
	Style string

	// StrokeColorHex overrides the variant's stroke colour when set.
	StrokeColorHex string

	// StrokeWidth overrides the variant's stroke width when positive.
	StrokeWidth int

	// Workers bounds lookup concurrency across rows.
	Workers int

	// GitHubToken authenticates the github source (optional).
	GitHubToken string

	// GoogleAPIKey and GoogleCX configure the google source.
	GoogleAPIKey string
	GoogleCX     string
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		LookupEnabled:        true,
		SourceType:           "iconify",
		SourceTimeoutSeconds: 10,
		SourceMaxCandidates:  50,
		Style:                "classic",
		Workers:              4,
	}
}

// HouseStyle resolves the effective house rules: the named variant
// with any explicit stroke overrides applied.
func (s Settings) HouseStyle() (HouseStyle, error) {
	style, err := StyleVariant(s.Style)
	if err != nil {
		return HouseStyle{}, err
	}
	if s.StrokeColorHex != "" {
		style.StrokeColor = s.StrokeColorHex
	}
	if s.StrokeWidth > 0 {
		style.StrokeWidth = s.StrokeWidth
	}
	return style, nil
}
