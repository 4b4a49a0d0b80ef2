package synth

import (
	"math/rand"
	"strings"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

// template is one named motif with the subject keywords that select it
// and a builder emitting its primitives.
type template struct {
	name     string
	keywords []string
	build    func(rng *rand.Rand, box domain.Bounds) []domain.Primitive
}

// templates is matched top to bottom; order is part of the contract
// because a subject can carry keywords of several motifs.
var templates = []template{
	{
		name:     "bottle",
		keywords: []string{"bottle", "fles", "flessen", "wijn", "wine", "bier", "beer", "drank", "drinks"},
		build:    buildBottle,
	},
	{
		name:     "container",
		keywords: []string{"box", "doos", "dozen", "container", "krat", "crate", "opslag", "storage", "verpakking", "packaging"},
		build:    buildContainer,
	},
	{
		name:     "wheel",
		keywords: []string{"wiel", "wielen", "wheel", "band", "banden", "tire", "fiets", "bike", "auto", "car"},
		build:    buildWheel,
	},
	{
		name:     "grid",
		keywords: []string{"grid", "rooster", "tegel", "tegels", "tiles", "assortiment", "set"},
		build:    buildGrid,
	},
	{
		name:     "shield",
		keywords: []string{"shield", "schild", "veiligheid", "safety", "bescherming", "protection", "beveiliging"},
		build:    buildShield,
	},
	{
		name:     "drop",
		keywords: []string{"druppel", "drop", "water", "olie", "oil", "vloeistof", "liquid"},
		build:    buildDrop,
	},
	{
		name:     "lock",
		keywords: []string{"slot", "lock", "sleutel", "key", "sloten"},
		build:    buildLock,
	},
	{
		name:     "monitor",
		keywords: []string{"monitor", "scherm", "screen", "tv", "televisie", "computer", "laptop", "beeldscherm"},
		build:    buildMonitor,
	},
	{
		name:     "brush",
		keywords: []string{"kwast", "brush", "borstel", "verf", "paint", "schilder", "schilderen"},
		build:    buildBrush,
	},
	{
		name:     "scale",
		keywords: []string{"weegschaal", "scale", "balans", "gewicht", "weight", "wegen"},
		build:    buildScale,
	},
	{
		name:     "plate",
		keywords: []string{"bord", "borden", "plate", "servies", "schaal", "keuken", "kitchen", "tableware"},
		build:    buildPlate,
	},
}

// genericTemplate is the catch-all emblem for subjects no keyword
// matches.
var genericTemplate = template{
	name:  "emblem",
	build: buildEmblem,
}

// jitter returns a value in [-span, span], the per-seed variation that
// keeps two different Catids from colliding on the same motif.
func jitter(rng *rand.Rand, span float64) float64 {
	return (rng.Float64()*2 - 1) * span
}

func circlePrim(cx, cy, r float64) domain.Primitive {
	return domain.Primitive{
		Kind: domain.KindCircle,
		Attrs: map[string]string{
			"cx": domain.FormatCoord(cx),
			"cy": domain.FormatCoord(cy),
			"r":  domain.FormatCoord(r),
		},
		Bounds: roundBounds(cx-r, cy-r, cx+r, cy+r),
	}
}

func rectPrim(x, y, w, h float64) domain.Primitive {
	return domain.Primitive{
		Kind: domain.KindRect,
		Attrs: map[string]string{
			"x":      domain.FormatCoord(x),
			"y":      domain.FormatCoord(y),
			"width":  domain.FormatCoord(w),
			"height": domain.FormatCoord(h),
		},
		Bounds: roundBounds(x, y, x+w, y+h),
	}
}

func linePrim(x1, y1, x2, y2 float64) domain.Primitive {
	return domain.Primitive{
		Kind: domain.KindLine,
		Attrs: map[string]string{
			"x1": domain.FormatCoord(x1),
			"y1": domain.FormatCoord(y1),
			"x2": domain.FormatCoord(x2),
			"y2": domain.FormatCoord(y2),
		},
		Bounds: roundBounds(min(x1, x2), min(y1, y2), max(x1, x2), max(y1, y2)),
	}
}

func polylinePrim(pts [][2]float64) domain.Primitive {
	var sb strings.Builder
	minX, minY := pts[0][0], pts[0][1]
	maxX, maxY := minX, minY
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(domain.FormatCoord(p[0]))
		sb.WriteByte(',')
		sb.WriteString(domain.FormatCoord(p[1]))
		minX, maxX = min(minX, p[0]), max(maxX, p[0])
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}
	return domain.Primitive{
		Kind:   domain.KindPolyline,
		Attrs:  map[string]string{"points": sb.String()},
		Bounds: roundBounds(minX, minY, maxX, maxY),
	}
}

func roundBounds(minX, minY, maxX, maxY float64) domain.Bounds {
	return domain.Bounds{
		MinX: domain.RoundCoord(minX),
		MinY: domain.RoundCoord(minY),
		MaxX: domain.RoundCoord(maxX),
		MaxY: domain.RoundCoord(maxY),
	}
}

func buildBottle(rng *rand.Rand, box domain.Bounds) []domain.Primitive {
	cx := (box.MinX + box.MaxX) / 2
	neckW := 28 + jitter(rng, 6)
	bodyW := 88 + jitter(rng, 12)
	shoulder := box.MinY + box.Height()*0.35

	prims := []domain.Primitive{
		rectPrim(cx-neckW/2, box.MinY, neckW, shoulder-box.MinY),
		rectPrim(cx-bodyW/2, shoulder, bodyW, box.MaxY-shoulder),
	}
	if rng.Intn(2) == 0 {
		// Label band.
		prims = append(prims, linePrim(cx-bodyW/2, shoulder+60, cx+bodyW/2, shoulder+60))
	}
	return prims
}

func buildContainer(rng *rand.Rand, box domain.Bounds) []domain.Primitive {
	inset := 12 + jitter(rng, 6)
	lidY := box.MinY + box.Height()*0.25

	prims := []domain.Primitive{
		rectPrim(box.MinX+inset, lidY, box.Width()-2*inset, box.MaxY-lidY),
		linePrim(box.MinX+inset, lidY+30, box.MaxX-inset, lidY+30),
	}
	if rng.Intn(2) == 0 {
		prims = append(prims, linePrim((box.MinX+box.MaxX)/2, lidY+30, (box.MinX+box.MaxX)/2, box.MaxY))
	}
	return prims
}

func buildWheel(rng *rand.Rand, box domain.Bounds) []domain.Primitive {
	cx := (box.MinX + box.MaxX) / 2
	cy := (box.MinY + box.MaxY) / 2
	outer := box.Width()/2 - 4
	hub := 24 + jitter(rng, 8)

	prims := []domain.Primitive{
		circlePrim(cx, cy, outer),
		circlePrim(cx, cy, hub),
	}
	spokes := 2 + rng.Intn(3)
	offsets := [][2]float64{{1, 0}, {0, 1}, {0.707, 0.707}, {-0.707, 0.707}}
	for i := 0; i < spokes && i < len(offsets); i++ {
		dx, dy := offsets[i][0], offsets[i][1]
		prims = append(prims, linePrim(cx-outer*dx, cy-outer*dy, cx+outer*dx, cy+outer*dy))
	}
	return prims
}

func buildGrid(rng *rand.Rand, box domain.Bounds) []domain.Primitive {
	gap := 16 + jitter(rng, 4)
	cell := (box.Width() - gap) / 2
	x0, y0 := box.MinX, box.MinY

	prims := []domain.Primitive{
		rectPrim(x0, y0, cell, cell),
		rectPrim(x0+cell+gap, y0, cell, cell),
		rectPrim(x0, y0+cell+gap, cell, cell),
	}
	if rng.Intn(2) == 0 {
		prims = append(prims, rectPrim(x0+cell+gap, y0+cell+gap, cell, cell))
	} else {
		prims = append(prims, circlePrim(x0+cell+gap+cell/2, y0+cell+gap+cell/2, cell/2))
	}
	return prims
}

func buildShield(rng *rand.Rand, box domain.Bounds) []domain.Primitive {
	cx := (box.MinX + box.MaxX) / 2
	w := box.Width()*0.7 + jitter(rng, 10)
	top := box.MinY + 8

	outline := polylinePrim([][2]float64{
		{cx - w/2, top},
		{cx + w/2, top},
		{cx + w/2, top + box.Height()*0.5},
		{cx, box.MaxY - 8},
		{cx - w/2, top + box.Height()*0.5},
		{cx - w/2, top},
	})
	prims := []domain.Primitive{outline}
	if rng.Intn(2) == 0 {
		prims = append(prims, linePrim(cx, top+24, cx, box.MaxY-48))
	} else {
		prims = append(prims, circlePrim(cx, top+box.Height()*0.35, 24+jitter(rng, 6)))
	}
	return prims
}

func buildDrop(rng *rand.Rand, box domain.Bounds) []domain.Primitive {
	cx := (box.MinX + box.MaxX) / 2
	r := box.Width()/4 + jitter(rng, 8)
	cy := box.MaxY - r - 8

	prims := []domain.Primitive{
		circlePrim(cx, cy, r),
		polylinePrim([][2]float64{
			{cx - r*0.8, cy - r*0.5},
			{cx, box.MinY + 8},
			{cx + r*0.8, cy - r*0.5},
		}),
	}
	if rng.Intn(2) == 0 {
		prims = append(prims, linePrim(cx-r/2, cy+r/3, cx+r/2, cy+r/3))
	}
	return prims
}

func buildLock(rng *rand.Rand, box domain.Bounds) []domain.Primitive {
	cx := (box.MinX + box.MaxX) / 2
	bodyW := box.Width()*0.6 + jitter(rng, 10)
	bodyTop := box.MinY + box.Height()*0.4

	prims := []domain.Primitive{
		rectPrim(cx-bodyW/2, bodyTop, bodyW, box.MaxY-bodyTop-8),
		circlePrim(cx, box.MinY+box.Height()*0.22, box.Height()*0.18),
		circlePrim(cx, bodyTop+(box.MaxY-8-bodyTop)/2, 12+jitter(rng, 3)),
	}
	return prims
}

func buildMonitor(rng *rand.Rand, box domain.Bounds) []domain.Primitive {
	screenH := box.Height()*0.6 + jitter(rng, 10)
	baseY := box.MinY + screenH

	prims := []domain.Primitive{
		rectPrim(box.MinX, box.MinY, box.Width(), screenH),
		linePrim((box.MinX+box.MaxX)/2, baseY, (box.MinX+box.MaxX)/2, baseY+36),
		linePrim((box.MinX+box.MaxX)/2-48, baseY+36, (box.MinX+box.MaxX)/2+48, baseY+36),
	}
	if rng.Intn(2) == 0 {
		prims = append(prims, linePrim(box.MinX+16, box.MinY+screenH*0.7, box.MaxX-16, box.MinY+screenH*0.7))
	}
	return prims
}

func buildBrush(rng *rand.Rand, box domain.Bounds) []domain.Primitive {
	headH := box.Height()*0.3 + jitter(rng, 8)
	cx := (box.MinX + box.MaxX) / 2
	handleW := 20 + jitter(rng, 4)

	prims := []domain.Primitive{
		rectPrim(box.MinX+24, box.MaxY-headH, box.Width()-48, headH),
		rectPrim(cx-handleW/2, box.MinY, handleW, box.MaxY-headH-box.MinY),
	}
	if rng.Intn(2) == 0 {
		prims = append(prims, linePrim(box.MinX+24, box.MaxY-headH/2, box.MaxX-24, box.MaxY-headH/2))
	}
	return prims
}

func buildScale(rng *rand.Rand, box domain.Bounds) []domain.Primitive {
	cx := (box.MinX + box.MaxX) / 2
	beamY := box.MinY + 24 + jitter(rng, 6)
	panR := 28 + jitter(rng, 6)

	return []domain.Primitive{
		linePrim(box.MinX+8, beamY, box.MaxX-8, beamY),
		linePrim(cx, beamY, cx, box.MaxY-8),
		circlePrim(box.MinX+8+panR, beamY+70, panR),
		circlePrim(box.MaxX-8-panR, beamY+70, panR),
	}
}

func buildPlate(rng *rand.Rand, box domain.Bounds) []domain.Primitive {
	cx := (box.MinX + box.MaxX) / 2
	cy := (box.MinY + box.MaxY) / 2
	outer := box.Width()/2 - 4

	prims := []domain.Primitive{
		circlePrim(cx, cy, outer),
		circlePrim(cx, cy, outer*0.55+jitter(rng, 8)),
	}
	if rng.Intn(2) == 0 {
		prims = append(prims, circlePrim(cx, cy, outer*0.2))
	}
	return prims
}

func buildEmblem(rng *rand.Rand, box domain.Bounds) []domain.Primitive {
	cx := (box.MinX + box.MaxX) / 2
	cy := (box.MinY + box.MaxY) / 2
	r := box.Width()/2 - 6 - jitter(rng, 4)

	prims := []domain.Primitive{circlePrim(cx, cy, r)}
	switch rng.Intn(3) {
	case 0:
		prims = append(prims,
			linePrim(cx-r*0.7, cy, cx+r*0.7, cy),
			linePrim(cx, cy-r*0.7, cx, cy+r*0.7))
	case 1:
		prims = append(prims, rectPrim(cx-r*0.5, cy-r*0.5, r, r))
	default:
		prims = append(prims,
			circlePrim(cx, cy, r*0.5),
			linePrim(cx-r, cy+r, cx+r, cy-r))
	}
	return prims
}
