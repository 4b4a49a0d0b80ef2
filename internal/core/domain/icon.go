package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// SVGNamespace is the XML namespace emitted on every icon.
const SVGNamespace = "http://www.w3.org/2000/svg"

// PrimitiveKind identifies a geometric shape element.
type PrimitiveKind string

// Allowed primitive kinds. Anything else is stripped during restyle.
const (
	KindLine     PrimitiveKind = "line"
	KindCircle   PrimitiveKind = "circle"
	KindEllipse  PrimitiveKind = "ellipse"
	KindRect     PrimitiveKind = "rect"
	KindPath     PrimitiveKind = "path"
	KindPolyline PrimitiveKind = "polyline"
	KindPolygon  PrimitiveKind = "polygon"
)

// IsValid returns true if the kind is an allowed geometric primitive.
func (k PrimitiveKind) IsValid() bool {
	switch k {
	case KindLine, KindCircle, KindEllipse, KindRect, KindPath, KindPolyline, KindPolygon:
		return true
	default:
		return false
	}
}

// Bounds is an axis-aligned bounding box in canvas coordinates.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Area returns the bounding-box area, used as a significance proxy.
func (b Bounds) Area() float64 { return b.Width() * b.Height() }

// Union returns the smallest bounds covering both boxes.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Primitive is a single geometric shape within an icon.
// Attrs holds geometric attributes only; paint is never stored per
// primitive because the house stroke spec is applied at the root.
type Primitive struct {
	Kind PrimitiveKind

	// Attrs maps geometric attribute names to formatted values
	// (e.g. "cx" -> "128", "d" -> "M16 16 L240 240").
	Attrs map[string]string

	// Bounds is the shape's bounding box. It orders primitives for
	// canonical serialisation and is not hashed itself.
	Bounds Bounds
}

// Canonical returns the stable serialisation of the primitive:
// kind plus attributes in sorted key order.
func (p Primitive) Canonical() string {
	keys := make([]string, 0, len(p.Attrs))
	for k := range p.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(string(p.Kind))
	sb.WriteByte(':')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(p.Attrs[k])
	}
	return sb.String()
}

// SortPrimitives orders primitives by bounding-box origin, then kind,
// then canonical form. The order is stable against upstream attribute
// or element reordering, so structurally identical icons hash equal.
func SortPrimitives(prims []Primitive) {
	sort.SliceStable(prims, func(i, j int) bool {
		a, b := prims[i], prims[j]
		if a.Bounds.MinX != b.Bounds.MinX {
			return a.Bounds.MinX < b.Bounds.MinX
		}
		if a.Bounds.MinY != b.Bounds.MinY {
			return a.Bounds.MinY < b.Bounds.MinY
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Canonical() < b.Canonical()
	})
}

// PathHash computes the canonical content hash over already-sorted,
// already-rounded primitives. Used for batch-scoped uniqueness checks.
func PathHash(prims []Primitive) string {
	parts := make([]string, len(prims))
	for i, p := range prims {
		parts[i] = p.Canonical()
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// CoordPrecision is the number of decimals kept when rounding
// coordinates before serialisation and hashing.
const CoordPrecision = 3

// RoundCoord rounds a coordinate to the canonical precision.
func RoundCoord(v float64) float64 {
	const scale = 1000 // 10^CoordPrecision
	return math.Round(v*scale) / scale
}

// FormatCoord renders a coordinate compactly: integers without a
// decimal point, everything else with up to three decimals and no
// trailing zeros.
func FormatCoord(v float64) string {
	v = RoundCoord(v)
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', CoordPrecision, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// HouseStyle is the fixed set of rules every emitted icon satisfies.
type HouseStyle struct {
	// CanvasSize is the square canvas edge in pixels.
	CanvasSize int

	// Margin is the minimum clear space on every side.
	Margin int

	// StrokeColor is the stroke colour as a hex literal.
	StrokeColor string

	// StrokeWidth is the uniform stroke width.
	StrokeWidth int

	// MinPrimitives and MaxPrimitives bound the shape count.
	MinPrimitives int
	MaxPrimitives int
}

// DefaultHouseStyle returns the classic house rules.
func DefaultHouseStyle() HouseStyle {
	return HouseStyle{
		CanvasSize:    256,
		Margin:        16,
		StrokeColor:   "#E63B14",
		StrokeWidth:   12,
		MinPrimitives: 2,
		MaxPrimitives: 6,
	}
}

// StyleVariant returns a named stroke preset. Only paint varies;
// canvas, margin and complexity rules are identical across variants.
func StyleVariant(name string) (HouseStyle, error) {
	s := DefaultHouseStyle()
	switch name {
	case "", "classic":
	case "thin":
		s.StrokeWidth = 8
	case "thick":
		s.StrokeWidth = 16
	case "blue":
		s.StrokeColor = "#004165"
	case "mono":
		s.StrokeColor = "#000000"
	default:
		return HouseStyle{}, fmt.Errorf("%w: style %q", ErrUnsupportedType, name)
	}
	return s, nil
}

// StyleVariantNames lists the recognised presets in display order.
func StyleVariantNames() []string {
	return []string{"classic", "thin", "thick", "blue", "mono"}
}

// ViewBox returns the canvas viewBox attribute value.
func (s HouseStyle) ViewBox() string {
	return fmt.Sprintf("0 0 %d %d", s.CanvasSize, s.CanvasSize)
}

// ContentBox returns the bounds content must fit within after the
// margin is honoured on every side.
func (s HouseStyle) ContentBox() Bounds {
	m := float64(s.Margin)
	c := float64(s.CanvasSize)
	return Bounds{MinX: m, MinY: m, MaxX: c - m, MaxY: c - m}
}

// NormalizedIcon is the durable per-row output: a fixed canvas and an
// ordered sequence of house-styled primitives. Written once after
// validation, never mutated.
type NormalizedIcon struct {
	Width  int
	Height int

	// Primitives in canonical order, between MinPrimitives and
	// MaxPrimitives of them.
	Primitives []Primitive

	// Style is the stroke spec the icon was rendered with.
	Style HouseStyle

	// PathHash is the canonical geometry hash (see PathHash).
	PathHash string
}

// PrimitiveKinds returns the distinct primitive kinds in first-seen
// order, as recorded in the manifest's primitives_used column.
func (i NormalizedIcon) PrimitiveKinds() []string {
	seen := make(map[PrimitiveKind]bool, len(i.Primitives))
	var kinds []string
	for _, p := range i.Primitives {
		if !seen[p.Kind] {
			seen[p.Kind] = true
			kinds = append(kinds, string(p.Kind))
		}
	}
	return kinds
}

// SVG renders the icon. Paint attributes live on the root element so
// every shape inherits the exact house stroke spec.
func (i NormalizedIcon) SVG() string {
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="`)
	sb.WriteString(SVGNamespace)
	sb.WriteString(`" width="`)
	sb.WriteString(strconv.Itoa(i.Width))
	sb.WriteString(`" height="`)
	sb.WriteString(strconv.Itoa(i.Height))
	sb.WriteString(`" viewBox="`)
	sb.WriteString(i.Style.ViewBox())
	sb.WriteString(`" fill="none" stroke="`)
	sb.WriteString(i.Style.StrokeColor)
	sb.WriteString(`" stroke-width="`)
	sb.WriteString(strconv.Itoa(i.Style.StrokeWidth))
	sb.WriteString(`" stroke-linecap="round" stroke-linejoin="round">`)
	for _, p := range i.Primitives {
		sb.WriteByte('<')
		sb.WriteString(string(p.Kind))
		keys := make([]string, 0, len(p.Attrs))
		for k := range p.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(p.Attrs[k])
			sb.WriteByte('"')
		}
		sb.WriteString("/>")
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// Forbidden constructs: elements and attributes that must never appear
// in an emitted icon. The restyle engine strips them; the validator
// re-checks for them.
var (
	ForbiddenElements = map[string]bool{
		"text": true, "tspan": true, "textPath": true,
		"image": true, "foreignObject": true,
		"style": true, "script": true,
		"defs": true, "use": true, "symbol": true,
		"mask": true, "clipPath": true, "filter": true,
		"linearGradient": true, "radialGradient": true, "pattern": true,
		"marker": true, "font": true, "a": true, "animate": true,
		"animateTransform": true, "animateMotion": true, "set": true,
	}

	ForbiddenAttributes = map[string]bool{
		"class": true, "style": true,
		"filter": true, "mask": true, "clip-path": true,
		"font-family": true, "font-size": true,
		"href": true, "xlink:href": true,
	}
)
