package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveCanonical(t *testing.T) {
	p := Primitive{
		Kind:  KindCircle,
		Attrs: map[string]string{"r": "40", "cx": "128", "cy": "128"},
	}
	// Attribute order in the map must not matter.
	assert.Equal(t, "circle:cx=128,cy=128,r=40", p.Canonical())
}

func TestSortPrimitivesStable(t *testing.T) {
	a := Primitive{Kind: KindRect, Bounds: Bounds{MinX: 10, MinY: 10}}
	b := Primitive{Kind: KindCircle, Bounds: Bounds{MinX: 10, MinY: 10}}
	c := Primitive{Kind: KindLine, Bounds: Bounds{MinX: 5, MinY: 40}}

	prims := []Primitive{a, b, c}
	SortPrimitives(prims)

	assert.Equal(t, KindLine, prims[0].Kind, "leftmost origin first")
	assert.Equal(t, KindCircle, prims[1].Kind, "kind breaks origin ties")
	assert.Equal(t, KindRect, prims[2].Kind)
}

func TestPathHashIgnoresInputOrder(t *testing.T) {
	a := Primitive{Kind: KindCircle, Attrs: map[string]string{"cx": "50", "cy": "50", "r": "10"}, Bounds: Bounds{MinX: 40, MinY: 40, MaxX: 60, MaxY: 60}}
	b := Primitive{Kind: KindRect, Attrs: map[string]string{"x": "100", "y": "100", "width": "20", "height": "20"}, Bounds: Bounds{MinX: 100, MinY: 100, MaxX: 120, MaxY: 120}}

	first := []Primitive{a, b}
	second := []Primitive{b, a}
	SortPrimitives(first)
	SortPrimitives(second)

	assert.Equal(t, PathHash(first), PathHash(second))
	assert.Len(t, PathHash(first), 64)
}

func TestFormatCoord(t *testing.T) {
	assert.Equal(t, "128", FormatCoord(128))
	assert.Equal(t, "128", FormatCoord(128.0004), "rounds to three decimals")
	assert.Equal(t, "12.5", FormatCoord(12.5))
	assert.Equal(t, "0.333", FormatCoord(1.0/3.0))
	assert.Equal(t, "-16", FormatCoord(-16.0))
}

func TestStyleVariants(t *testing.T) {
	classic, err := StyleVariant("classic")
	require.NoError(t, err)
	assert.Equal(t, DefaultHouseStyle(), classic)

	thin, err := StyleVariant("thin")
	require.NoError(t, err)
	assert.Equal(t, 8, thin.StrokeWidth)
	assert.Equal(t, classic.StrokeColor, thin.StrokeColor, "variants only change paint")

	_, err = StyleVariant("neon")
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestContentBox(t *testing.T) {
	box := DefaultHouseStyle().ContentBox()
	assert.Equal(t, Bounds{MinX: 16, MinY: 16, MaxX: 240, MaxY: 240}, box)
	assert.Equal(t, 224.0, box.Width())
}

func TestNormalizedIconSVG(t *testing.T) {
	style := DefaultHouseStyle()
	icon := NormalizedIcon{
		Width:  style.CanvasSize,
		Height: style.CanvasSize,
		Style:  style,
		Primitives: []Primitive{
			{Kind: KindCircle, Attrs: map[string]string{"cx": "128", "cy": "128", "r": "96"}},
			{Kind: KindLine, Attrs: map[string]string{"x1": "16", "y1": "128", "x2": "240", "y2": "128"}},
		},
	}

	svg := icon.SVG()
	assert.True(t, strings.HasPrefix(svg, "<svg xmlns=\""+SVGNamespace+"\""))
	assert.Contains(t, svg, `viewBox="0 0 256 256"`)
	assert.Contains(t, svg, `fill="none"`)
	assert.Contains(t, svg, `stroke="#E63B14"`)
	assert.Contains(t, svg, `stroke-width="12"`)
	assert.Contains(t, svg, `stroke-linecap="round"`)
	assert.Contains(t, svg, `<circle cx="128" cy="128" r="96"/>`)
	assert.NotContains(t, svg, "fill=\"#", "paint lives on the root only")
}

func TestPrimitiveKindsFirstSeenOrder(t *testing.T) {
	icon := NormalizedIcon{Primitives: []Primitive{
		{Kind: KindRect}, {Kind: KindCircle}, {Kind: KindRect},
	}}
	assert.Equal(t, []string{"rect", "circle"}, icon.PrimitiveKinds())
}
