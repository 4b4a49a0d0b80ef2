package restyle

import (
	"math"
	"strings"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

// shape is a parsed geometric element in numeric form, the unit the
// engine simplifies, fits and serialises.
type shape struct {
	kind domain.PrimitiveKind

	// nums holds scalar geometry for line/circle/ellipse/rect.
	nums map[string]float64

	// points holds polyline/polygon vertices.
	points [][2]float64

	// path holds parsed path commands.
	path []pathCommand
}

// bounds returns the shape's bounding box. ok is false for shapes with
// no resolvable geometry (empty point lists, empty paths).
func (s *shape) bounds() (domain.Bounds, bool) {
	switch s.kind {
	case domain.KindLine:
		return rectBounds(
			math.Min(s.nums["x1"], s.nums["x2"]),
			math.Min(s.nums["y1"], s.nums["y2"]),
			math.Max(s.nums["x1"], s.nums["x2"]),
			math.Max(s.nums["y1"], s.nums["y2"]),
		), true
	case domain.KindCircle:
		r := s.nums["r"]
		return rectBounds(s.nums["cx"]-r, s.nums["cy"]-r, s.nums["cx"]+r, s.nums["cy"]+r), r > 0
	case domain.KindEllipse:
		rx, ry := s.nums["rx"], s.nums["ry"]
		return rectBounds(s.nums["cx"]-rx, s.nums["cy"]-ry, s.nums["cx"]+rx, s.nums["cy"]+ry), rx > 0 && ry > 0
	case domain.KindRect:
		w, h := s.nums["width"], s.nums["height"]
		return rectBounds(s.nums["x"], s.nums["y"], s.nums["x"]+w, s.nums["y"]+h), w > 0 && h > 0
	case domain.KindPolyline, domain.KindPolygon:
		if len(s.points) == 0 {
			return domain.Bounds{}, false
		}
		b := rectBounds(s.points[0][0], s.points[0][1], s.points[0][0], s.points[0][1])
		for _, p := range s.points[1:] {
			b.MinX = math.Min(b.MinX, p[0])
			b.MinY = math.Min(b.MinY, p[1])
			b.MaxX = math.Max(b.MaxX, p[0])
			b.MaxY = math.Max(b.MaxY, p[1])
		}
		return b, true
	case domain.KindPath:
		return pathBounds(s.path)
	}
	return domain.Bounds{}, false
}

func rectBounds(minX, minY, maxX, maxY float64) domain.Bounds {
	return domain.Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// significance orders shapes for simplification: bounding-box area
// first, path length proxy as tie-break, so the largest and most
// detailed geometry survives reduction.
func (s *shape) significance() float64 {
	b, ok := s.bounds()
	if !ok {
		return 0
	}
	sig := b.Area()
	if s.kind == domain.KindPath {
		sig += float64(commandCount(s.path))
	}
	if s.kind == domain.KindPolyline || s.kind == domain.KindPolygon {
		sig += float64(len(s.points))
	}
	return sig
}

// transform applies a uniform scale then translation.
func (s *shape) transform(scale, tx, ty float64) {
	switch s.kind {
	case domain.KindLine:
		s.nums["x1"] = s.nums["x1"]*scale + tx
		s.nums["y1"] = s.nums["y1"]*scale + ty
		s.nums["x2"] = s.nums["x2"]*scale + tx
		s.nums["y2"] = s.nums["y2"]*scale + ty
	case domain.KindCircle:
		s.nums["cx"] = s.nums["cx"]*scale + tx
		s.nums["cy"] = s.nums["cy"]*scale + ty
		s.nums["r"] *= scale
	case domain.KindEllipse:
		s.nums["cx"] = s.nums["cx"]*scale + tx
		s.nums["cy"] = s.nums["cy"]*scale + ty
		s.nums["rx"] *= scale
		s.nums["ry"] *= scale
	case domain.KindRect:
		s.nums["x"] = s.nums["x"]*scale + tx
		s.nums["y"] = s.nums["y"]*scale + ty
		s.nums["width"] *= scale
		s.nums["height"] *= scale
		if rx, ok := s.nums["rx"]; ok {
			s.nums["rx"] = rx * scale
		}
		if ry, ok := s.nums["ry"]; ok {
			s.nums["ry"] = ry * scale
		}
	case domain.KindPolyline, domain.KindPolygon:
		for i := range s.points {
			s.points[i][0] = s.points[i][0]*scale + tx
			s.points[i][1] = s.points[i][1]*scale + ty
		}
	case domain.KindPath:
		transformPath(s.path, scale, tx, ty)
	}
}

// primitive serialises the shape into its canonical domain form with
// rounded, compact coordinates and geometric attributes only.
func (s *shape) primitive() domain.Primitive {
	attrs := make(map[string]string)
	switch s.kind {
	case domain.KindLine, domain.KindCircle, domain.KindEllipse, domain.KindRect:
		for k, v := range s.nums {
			attrs[k] = domain.FormatCoord(v)
		}
	case domain.KindPolyline, domain.KindPolygon:
		var sb strings.Builder
		for i, p := range s.points {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(domain.FormatCoord(p[0]))
			sb.WriteByte(',')
			sb.WriteString(domain.FormatCoord(p[1]))
		}
		attrs["points"] = sb.String()
	case domain.KindPath:
		attrs["d"] = serializePath(s.path)
	}

	b, _ := s.bounds()
	b.MinX = domain.RoundCoord(b.MinX)
	b.MinY = domain.RoundCoord(b.MinY)
	b.MaxX = domain.RoundCoord(b.MaxX)
	b.MaxY = domain.RoundCoord(b.MaxY)

	return domain.Primitive{Kind: s.kind, Attrs: attrs, Bounds: b}
}
