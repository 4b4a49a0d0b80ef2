package restyle

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/logger"
)

// Engine normalises arbitrary vector markup into house style.
type Engine struct {
	style domain.HouseStyle
}

// New creates a restyle engine for the given house rules.
func New(style domain.HouseStyle) *Engine {
	return &Engine{style: style}
}

// Normalize rewrites candidate markup into a NormalizedIcon.
// Deterministic: identical markup yields an identical icon, and the
// resulting hash is insensitive to attribute ordering, paint noise and
// element reordering in the input.
//
// Returns domain.ErrRestyleTooTrivial when fewer than the house
// minimum of primitives survive stripping and simplification.
func (e *Engine) Normalize(markup string) (domain.NormalizedIcon, error) {
	shapes, err := parseShapes(markup)
	if err != nil {
		return domain.NormalizedIcon{}, fmt.Errorf("restyle: %w", err)
	}

	// Degenerate geometry (zero-size rects, empty paths) is stripped
	// with the forbidden constructs.
	usable := shapes[:0]
	for _, s := range shapes {
		if _, ok := s.bounds(); ok {
			usable = append(usable, s)
		}
	}

	usable = e.simplify(usable)
	if len(usable) < e.style.MinPrimitives {
		return domain.NormalizedIcon{}, fmt.Errorf("%w: %d primitives after simplification",
			domain.ErrRestyleTooTrivial, len(usable))
	}

	e.fit(usable)

	prims := make([]domain.Primitive, len(usable))
	for i, s := range usable {
		prims[i] = s.primitive()
	}
	domain.SortPrimitives(prims)

	icon := domain.NormalizedIcon{
		Width:      e.style.CanvasSize,
		Height:     e.style.CanvasSize,
		Primitives: prims,
		Style:      e.style,
		PathHash:   domain.PathHash(prims),
	}
	logger.Debug("restyle: %d shapes -> %d primitives, hash %.12s",
		len(shapes), len(prims), icon.PathHash)
	return icon, nil
}

// simplify reduces the shape count to the house maximum by dropping
// the least significant shapes, keeping document order among the
// survivors.
func (e *Engine) simplify(shapes []*shape) []*shape {
	if len(shapes) <= e.style.MaxPrimitives {
		return shapes
	}

	type ranked struct {
		index int
		sig   float64
	}
	order := make([]ranked, len(shapes))
	for i, s := range shapes {
		order[i] = ranked{index: i, sig: s.significance()}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].sig > order[j].sig
	})

	keep := make(map[int]bool, e.style.MaxPrimitives)
	for _, r := range order[:e.style.MaxPrimitives] {
		keep[r.index] = true
	}

	out := shapes[:0]
	for i, s := range shapes {
		if keep[i] {
			out = append(out, s)
		}
	}
	return out
}

// fit rescales and translates all shapes uniformly so their union
// bounding box sits centred inside the content box, aspect ratio
// preserved.
func (e *Engine) fit(shapes []*shape) {
	var union domain.Bounds
	first := true
	for _, s := range shapes {
		b, ok := s.bounds()
		if !ok {
			continue
		}
		if first {
			union = b
			first = false
		} else {
			union = union.Union(b)
		}
	}
	if first {
		return
	}

	content := e.style.ContentBox()
	w, h := union.Width(), union.Height()
	// A straight line has a zero extent on one axis; treat it as one
	// unit so the scale stays finite.
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	scale := content.Width() / w
	if vs := content.Height() / h; vs < scale {
		scale = vs
	}

	tx := content.MinX + (content.Width()-w*scale)/2 - union.MinX*scale
	ty := content.MinY + (content.Height()-h*scale)/2 - union.MinY*scale

	for _, s := range shapes {
		s.transform(scale, tx, ty)
	}
}
