package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/synth"
)

func TestIconPasses(t *testing.T) {
	style := domain.DefaultHouseStyle()
	icon, _, err := synth.New(style).Synthesize("1001", "Gereedschap", 0)
	require.NoError(t, err)

	assert.Empty(t, New(style).Icon(icon))
}

func TestIconViolations(t *testing.T) {
	style := domain.DefaultHouseStyle()
	wrong := style
	wrong.StrokeColor = "#123456"
	wrong.StrokeWidth = 1

	icon := domain.NormalizedIcon{
		Width:  128,
		Height: 128,
		Style:  wrong,
		Primitives: []domain.Primitive{
			{Kind: domain.KindCircle, Attrs: map[string]string{"cx": "64", "cy": "64", "r": "40", "class": "x"}},
		},
	}

	violations := New(style).Icon(icon)
	codes := make(map[string]int)
	for _, v := range violations {
		codes[v.Code]++
	}
	assert.Equal(t, 1, codes[CodeCanvas])
	assert.Equal(t, 2, codes[CodeStroke])
	assert.Equal(t, 1, codes[CodeCount])
	assert.Equal(t, 1, codes[CodeForbidden])
}

func TestMarkupRoundTrip(t *testing.T) {
	style := domain.DefaultHouseStyle()
	icon, _, err := synth.New(style).Synthesize("2002", "Computer", 0)
	require.NoError(t, err)

	assert.Empty(t, New(style).Markup(icon.SVG()))
}

func TestMarkupRejectsForeignPaint(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="256" height="256" viewBox="0 0 256 256"` +
		` fill="none" stroke="#E63B14" stroke-width="12" stroke-linecap="round" stroke-linejoin="round">` +
		`<text x="10" y="10">nope</text>` +
		`<circle cx="128" cy="128" r="100" style="stroke:blue"/>` +
		`<rect x="40" y="40" width="176" height="176"/>` +
		`</svg>`

	violations := New(domain.DefaultHouseStyle()).Markup(svg)
	require.Len(t, violations, 2)
	assert.Equal(t, CodeForbidden, violations[0].Code)
	assert.Contains(t, violations[0].Detail, "<text>")
	assert.Equal(t, CodeForbidden, violations[1].Code)
	assert.Contains(t, violations[1].Detail, `"style"`)
}

func TestMarkupWrongStrokeSpec(t *testing.T) {
	svg := `<svg viewBox="0 0 256 256" fill="none" stroke="#000000" stroke-width="12"` +
		` stroke-linecap="round" stroke-linejoin="round">` +
		`<circle cx="128" cy="128" r="100"/><rect x="40" y="40" width="176" height="176"/></svg>`

	violations := New(domain.DefaultHouseStyle()).Markup(svg)
	require.Len(t, violations, 1)
	assert.Equal(t, CodeStroke, violations[0].Code)
	assert.Contains(t, violations[0].Detail, "#000000")
}

func TestMarkupNotSVG(t *testing.T) {
	violations := New(domain.DefaultHouseStyle()).Markup(`<html><body/></html>`)
	require.NotEmpty(t, violations)
	assert.Equal(t, CodeMarkup, violations[0].Code)
}

func TestHashSetCollision(t *testing.T) {
	set := NewHashSet()

	owner, ok := set.Register("abc", "1001")
	require.True(t, ok)
	assert.Equal(t, "1001", owner)

	owner, ok = set.Register("abc", "1002")
	assert.False(t, ok)
	assert.Equal(t, "1001", owner, "earlier row keeps the hash")

	_, ok = set.Register("def", "1002")
	assert.True(t, ok)
	assert.Equal(t, 2, set.Len())
}
