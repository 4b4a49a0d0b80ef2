package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

func TestRankRejectsRaster(t *testing.T) {
	r := NewRanker()

	ranked := r.Rank([]domain.Candidate{
		{Title: "embedded", Markup: `<svg><image href="x.png"/></svg>`},
		{Title: "data-uri", Markup: `<svg><path fill="url(data:image/png;base64,AAAA)" d="M0 0"/></svg>`},
	})

	require.Len(t, ranked, 2)
	for _, rc := range ranked {
		assert.False(t, rc.Acceptable)
		assert.Equal(t, RejectRaster, rc.RejectReason)
	}
}

func TestRankRejectsText(t *testing.T) {
	r := NewRanker()

	ranked := r.Rank([]domain.Candidate{
		{Title: "label", Markup: `<svg><text x="1" y="1">hi</text></svg>`},
	})
	require.Len(t, ranked, 1)
	assert.Equal(t, RejectText, ranked[0].RejectReason)
}

func TestRankRejectsTooComplex(t *testing.T) {
	r := NewRanker()

	var sb strings.Builder
	sb.WriteString("<svg>")
	for i := 0; i <= PreParsePrimitiveCeiling; i++ {
		sb.WriteString(`<circle cx="1" cy="1" r="1"/>`)
	}
	sb.WriteString("</svg>")

	ranked := r.Rank([]domain.Candidate{{Title: "busy", Markup: sb.String()}})
	require.Len(t, ranked, 1)
	assert.False(t, ranked[0].Acceptable)
	assert.Contains(t, ranked[0].RejectReason, RejectTooComplex)
}

func TestRankNeverRejectsFixableMarkup(t *testing.T) {
	r := NewRanker()

	// Fills, styles, defs and gradients are restyle problems, not
	// ranking problems.
	ranked := r.Rank([]domain.Candidate{
		{Title: "dirty", Markup: `<svg><defs><linearGradient id="g"/></defs>` +
			`<circle cx="1" cy="1" r="1" fill="url(#g)" style="opacity:.5"/></svg>`},
	})
	require.Len(t, ranked, 1)
	assert.True(t, ranked[0].Acceptable)
}

func TestRankOrdersBySimplicityStable(t *testing.T) {
	r := NewRanker()

	simple := `<svg><circle cx="1" cy="1" r="1"/></svg>`
	busy := `<svg><path d="M0 0 L1 1 L2 2 L3 3 C4 4 5 5 6 6"/><rect x="0" y="0" width="1" height="1"/></svg>`

	ranked := r.Rank([]domain.Candidate{
		{Title: "busy", Markup: busy},
		{Title: "simple-a", Markup: simple},
		{Title: "simple-b", Markup: simple},
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "simple-a", ranked[0].Candidate.Title)
	assert.Equal(t, "simple-b", ranked[1].Candidate.Title, "ties keep source order")
	assert.Equal(t, "busy", ranked[2].Candidate.Title)
	assert.Less(t, ranked[0].Candidate.Complexity, ranked[2].Candidate.Complexity)

	best, ok := FirstAcceptable(ranked)
	require.True(t, ok)
	assert.Equal(t, "simple-a", best.Title)
}

func TestFirstAcceptableNone(t *testing.T) {
	r := NewRanker()
	ranked := r.Rank([]domain.Candidate{
		{Title: "label", Markup: `<svg><text>x</text></svg>`},
	})
	_, ok := FirstAcceptable(ranked)
	assert.False(t, ok)
}
