package restyle

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

// pathCommand is one parsed path-data command with its arguments.
type pathCommand struct {
	cmd  byte // M L H V C S Q T A Z, lower case for relative
	args []float64
}

// argCounts gives the arguments consumed per repetition of a command.
var argCounts = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

// parsePathData tokenises an SVG path "d" attribute. Repeated argument
// groups are split into individual commands so later passes see one
// command per group.
func parsePathData(d string) ([]pathCommand, error) {
	var cmds []pathCommand
	i := 0
	n := len(d)

	readNumber := func() (float64, bool, error) {
		for i < n && (d[i] == ' ' || d[i] == ',' || d[i] == '\t' || d[i] == '\n' || d[i] == '\r') {
			i++
		}
		start := i
		if i < n && (d[i] == '+' || d[i] == '-') {
			i++
		}
		digits := false
		for i < n && d[i] >= '0' && d[i] <= '9' {
			i++
			digits = true
		}
		if i < n && d[i] == '.' {
			i++
			for i < n && d[i] >= '0' && d[i] <= '9' {
				i++
				digits = true
			}
		}
		if digits && i < n && (d[i] == 'e' || d[i] == 'E') {
			j := i + 1
			if j < n && (d[j] == '+' || d[j] == '-') {
				j++
			}
			expDigits := false
			for j < n && d[j] >= '0' && d[j] <= '9' {
				j++
				expDigits = true
			}
			if expDigits {
				i = j
			}
		}
		if !digits {
			i = start
			return 0, false, nil
		}
		v, err := strconv.ParseFloat(d[start:i], 64)
		if err != nil {
			return 0, false, fmt.Errorf("path number %q: %w", d[start:i], err)
		}
		return v, true, nil
	}

	var current byte
	for i < n {
		c := d[i]
		switch {
		case c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r':
			i++
			continue
		case isPathCommand(c):
			current = c
			i++
		default:
			// Implicit command repetition; a bare number after M
			// continues as L per the SVG grammar.
			if current == 0 {
				return nil, fmt.Errorf("path data starts with %q", c)
			}
			switch current {
			case 'M':
				current = 'L'
			case 'm':
				current = 'l'
			}
		}

		upper := upperCmd(current)
		count := argCounts[upper]
		args := make([]float64, 0, count)
		for len(args) < count {
			v, ok, err := readNumber()
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("path command %c: expected %d args, got %d", current, count, len(args))
			}
			args = append(args, v)
		}
		cmds = append(cmds, pathCommand{cmd: current, args: args})
		if upper == 'Z' {
			current = 0
		}
	}
	return cmds, nil
}

func isPathCommand(c byte) bool {
	_, ok := argCounts[upperCmd(c)]
	return ok && ((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'))
}

func upperCmd(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func isRelative(c byte) bool { return c >= 'a' && c <= 'z' }

// pathBounds approximates the bounding box by tracking every anchor
// and control point in absolute coordinates. Curve extrema beyond
// control points are not solved for; control hulls bound the curves,
// which is tight enough for fitting and canonical ordering.
func pathBounds(cmds []pathCommand) (domain.Bounds, bool) {
	b := domain.Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	var x, y, startX, startY float64
	seen := false

	include := func(px, py float64) {
		seen = true
		b.MinX = math.Min(b.MinX, px)
		b.MinY = math.Min(b.MinY, py)
		b.MaxX = math.Max(b.MaxX, px)
		b.MaxY = math.Max(b.MaxY, py)
	}

	for _, pc := range cmds {
		rel := isRelative(pc.cmd)
		switch upperCmd(pc.cmd) {
		case 'M', 'L', 'T':
			nx, ny := pc.args[0], pc.args[1]
			if rel {
				nx += x
				ny += y
			}
			x, y = nx, ny
			include(x, y)
			if upperCmd(pc.cmd) == 'M' {
				startX, startY = x, y
			}
		case 'H':
			nx := pc.args[0]
			if rel {
				nx += x
			}
			x = nx
			include(x, y)
		case 'V':
			ny := pc.args[0]
			if rel {
				ny += y
			}
			y = ny
			include(x, y)
		case 'C':
			pts := absPairs(pc.args, x, y, rel)
			for _, p := range pts {
				include(p[0], p[1])
			}
			x, y = pts[2][0], pts[2][1]
		case 'S', 'Q':
			pts := absPairs(pc.args, x, y, rel)
			for _, p := range pts {
				include(p[0], p[1])
			}
			x, y = pts[1][0], pts[1][1]
		case 'A':
			nx, ny := pc.args[5], pc.args[6]
			if rel {
				nx += x
				ny += y
			}
			include(x, y)
			include(nx, ny)
			x, y = nx, ny
		case 'Z':
			x, y = startX, startY
		}
	}
	if !seen {
		return domain.Bounds{}, false
	}
	return b, true
}

// absPairs converts an argument list of coordinate pairs to absolute
// points relative to (x, y) when rel is set.
func absPairs(args []float64, x, y float64, rel bool) [][2]float64 {
	pts := make([][2]float64, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		px, py := args[i], args[i+1]
		if rel {
			px += x
			py += y
		}
		pts = append(pts, [2]float64{px, py})
	}
	return pts
}

// transformPath applies a uniform scale then translation in place.
// Relative commands scale without translating; arc radii scale and
// keep their rotation and flags.
func transformPath(cmds []pathCommand, scale, tx, ty float64) {
	for i := range cmds {
		pc := &cmds[i]
		rel := isRelative(pc.cmd)
		switch upperCmd(pc.cmd) {
		case 'H':
			pc.args[0] *= scale
			if !rel {
				pc.args[0] += tx
			}
		case 'V':
			pc.args[0] *= scale
			if !rel {
				pc.args[0] += ty
			}
		case 'A':
			pc.args[0] *= scale // rx
			pc.args[1] *= scale // ry
			pc.args[5] *= scale
			pc.args[6] *= scale
			if !rel {
				pc.args[5] += tx
				pc.args[6] += ty
			}
		case 'Z':
		default:
			for j := 0; j+1 < len(pc.args); j += 2 {
				pc.args[j] *= scale
				pc.args[j+1] *= scale
				if !rel {
					pc.args[j] += tx
					pc.args[j+1] += ty
				}
			}
		}
	}
}

// serializePath renders commands back to a canonical "d" string with
// rounded, compactly formatted coordinates.
func serializePath(cmds []pathCommand) string {
	var sb strings.Builder
	for i, pc := range cmds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(pc.cmd)
		for _, a := range pc.args {
			sb.WriteByte(' ')
			sb.WriteString(domain.FormatCoord(a))
		}
	}
	return sb.String()
}

// commandCount is the path-length proxy used for significance ties.
func commandCount(cmds []pathCommand) int { return len(cmds) }
