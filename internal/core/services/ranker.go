package services

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/logger"
)

// PreParsePrimitiveCeiling is the generous shape-count ceiling applied
// before restyling. Distinct from the post-restyle house maximum: a
// candidate above this is hopeless to simplify, one below it may still
// be reduced to the house limit.
const PreParsePrimitiveCeiling = 24

// Reject reason codes recorded for unusable candidates.
const (
	RejectRaster     = "embedded_raster"
	RejectText       = "text_content"
	RejectTooComplex = "too_complex"
)

var (
	rasterPattern  = regexp.MustCompile(`(?i)<image\b|data:image/`)
	textPattern    = regexp.MustCompile(`(?i)<(text|tspan|textPath)\b`)
	shapePattern   = regexp.MustCompile(`(?i)<(path|line|circle|ellipse|rect|polyline|polygon)\b`)
	pathDataAttr   = regexp.MustCompile(`(?is)\bd\s*=\s*["']([^"']*)["']`)
	pathCommandSet = regexp.MustCompile(`(?i)[mlhvcsqtaz]`)
)

// Ranker scores and orders lookup candidates by geometric simplicity.
// It rejects only structural disqualifiers restyling cannot fix;
// attribute problems (fills, styles, defs) are normalised downstream,
// never filtered here.
type Ranker struct{}

// NewRanker creates a candidate ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank returns every candidate with a verdict: acceptable candidates
// first, ordered by ascending complexity with source order breaking
// ties, followed by rejected candidates in source order.
func (r *Ranker) Rank(candidates []domain.Candidate) []domain.RankedCandidate {
	var acceptable, rejected []domain.RankedCandidate

	for _, c := range candidates {
		if reason := structuralReject(c.Markup); reason != "" {
			logger.Debug("ranker: rejected %q (%s)", c.Title, reason)
			rejected = append(rejected, domain.RankedCandidate{
				Candidate:    c,
				Acceptable:   false,
				RejectReason: reason,
			})
			continue
		}
		c.Complexity = complexity(c.Markup)
		acceptable = append(acceptable, domain.RankedCandidate{Candidate: c, Acceptable: true})
	}

	sort.SliceStable(acceptable, func(i, j int) bool {
		return acceptable[i].Candidate.Complexity < acceptable[j].Candidate.Complexity
	})

	return append(acceptable, rejected...)
}

// FirstAcceptable returns the top-ranked usable candidate.
func FirstAcceptable(ranked []domain.RankedCandidate) (domain.Candidate, bool) {
	for _, rc := range ranked {
		if rc.Acceptable {
			return rc.Candidate, true
		}
	}
	return domain.Candidate{}, false
}

// structuralReject returns a reason code when the markup carries a
// disqualifier that restyling cannot repair, empty otherwise.
func structuralReject(markup string) string {
	if rasterPattern.MatchString(markup) {
		return RejectRaster
	}
	if textPattern.MatchString(markup) {
		return RejectText
	}
	if n := len(shapePattern.FindAllString(markup, -1)); n > PreParsePrimitiveCeiling {
		return fmt.Sprintf("%s: %d primitives", RejectTooComplex, n)
	}
	return ""
}

// complexity is the cheap pre-parse score: shape elements plus path
// commands, lower is simpler.
func complexity(markup string) int {
	score := len(shapePattern.FindAllString(markup, -1))
	for _, m := range pathDataAttr.FindAllStringSubmatch(markup, -1) {
		score += len(pathCommandSet.FindAllString(m[1], -1))
	}
	return score
}
