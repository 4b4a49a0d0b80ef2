package restyle

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

// parseShapes walks the markup and returns the allowed geometric
// elements in document order. Forbidden elements are skipped together
// with their whole subtree; unknown containers (g, svg) are descended
// into. This is the stripping step: nothing here rejects, it only
// drops what the house style forbids.
//
// TODO: flatten translate/scale transforms on groups instead of
// ignoring the attribute; rare in icon catalogues but seen on wrapped
// exports.
func parseShapes(markup string) ([]*shape, error) {
	dec := xml.NewDecoder(strings.NewReader(markup))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity

	var shapes []*shape
	skipDepth := 0

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Truncated markup (unclosed elements at EOF) keeps the
			// shapes read so far; any other syntax error is fatal.
			var syn *xml.SyntaxError
			if errors.As(err, &syn) && strings.Contains(syn.Msg, "unexpected EOF") {
				break
			}
			return nil, fmt.Errorf("parse markup: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if skipDepth > 0 {
				skipDepth++
				continue
			}
			name := t.Name.Local
			if domain.ForbiddenElements[name] {
				skipDepth = 1
				continue
			}
			kind := domain.PrimitiveKind(name)
			if kind.IsValid() {
				if sh := shapeFromElement(kind, t.Attr); sh != nil {
					shapes = append(shapes, sh)
				}
			}
		case xml.EndElement:
			if skipDepth > 0 {
				skipDepth--
			}
		}
	}
	return shapes, nil
}

// geometricAttrs lists the attributes carried over per kind. Paint,
// class and style attributes are dropped here by omission.
var geometricAttrs = map[domain.PrimitiveKind][]string{
	domain.KindLine:    {"x1", "y1", "x2", "y2"},
	domain.KindCircle:  {"cx", "cy", "r"},
	domain.KindEllipse: {"cx", "cy", "rx", "ry"},
	domain.KindRect:    {"x", "y", "width", "height", "rx", "ry"},
}

// shapeFromElement builds a numeric shape from element attributes.
// Returns nil for elements whose geometry cannot be read; a broken
// element is stripped, never fatal.
func shapeFromElement(kind domain.PrimitiveKind, attrs []xml.Attr) *shape {
	get := func(name string) (string, bool) {
		for _, a := range attrs {
			if a.Name.Local == name {
				return a.Value, true
			}
		}
		return "", false
	}

	switch kind {
	case domain.KindLine, domain.KindCircle, domain.KindEllipse, domain.KindRect:
		s := &shape{kind: kind, nums: make(map[string]float64)}
		for _, name := range geometricAttrs[kind] {
			raw, ok := get(name)
			if !ok {
				// Missing positional attributes default to zero per
				// the SVG spec; missing radii default to absent.
				if name == "rx" || name == "ry" {
					continue
				}
				s.nums[name] = 0
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return nil
			}
			s.nums[name] = v
		}
		return s

	case domain.KindPolyline, domain.KindPolygon:
		raw, ok := get("points")
		if !ok {
			return nil
		}
		pts, err := parsePoints(raw)
		if err != nil || len(pts) < 2 {
			return nil
		}
		return &shape{kind: kind, points: pts}

	case domain.KindPath:
		raw, ok := get("d")
		if !ok {
			return nil
		}
		cmds, err := parsePathData(raw)
		if err != nil || len(cmds) == 0 {
			return nil
		}
		return &shape{kind: kind, path: cmds}
	}
	return nil
}

// parsePoints reads a polyline/polygon points list.
func parsePoints(raw string) ([][2]float64, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("odd coordinate count %d", len(fields))
	}
	pts := make([][2]float64, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, err
		}
		pts = append(pts, [2]float64{x, y})
	}
	return pts, nil
}
