// Package validate re-checks emitted icons against the house rules.
//
// The restyle engine and the synthesizer are supposed to produce
// conforming output; the validator is the independent gate that makes
// the guarantee observable. It checks in-memory icons before they are
// written and re-checks emitted files for the validate command.
package validate

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

// Violation codes recorded in batch results and printed by the
// validate command.
const (
	CodeCanvas    = "canvas"
	CodeStroke    = "stroke"
	CodeForbidden = "forbidden"
	CodeCount     = "primitive_count"
	CodeDuplicate = "duplicate_hash"
	CodeMarkup    = "markup"
)

// Violation is one failed house-rule check.
type Violation struct {
	Code   string
	Detail string
}

func (v Violation) String() string {
	return v.Code + ": " + v.Detail
}

// Validator checks icons against a resolved house style.
type Validator struct {
	style domain.HouseStyle
}

// New creates a validator for the given house rules.
func New(style domain.HouseStyle) *Validator {
	return &Validator{style: style}
}

// Icon checks a normalized icon before it is written. Uniqueness is
// checked separately against the batch hash registry.
func (v *Validator) Icon(icon domain.NormalizedIcon) []Violation {
	var out []Violation

	if icon.Width != v.style.CanvasSize || icon.Height != v.style.CanvasSize {
		out = append(out, Violation{CodeCanvas, fmt.Sprintf(
			"canvas %dx%d, want %dx%d", icon.Width, icon.Height, v.style.CanvasSize, v.style.CanvasSize)})
	}
	if icon.Style.StrokeColor != v.style.StrokeColor {
		out = append(out, Violation{CodeStroke, fmt.Sprintf(
			"stroke %s, want %s", icon.Style.StrokeColor, v.style.StrokeColor)})
	}
	if icon.Style.StrokeWidth != v.style.StrokeWidth {
		out = append(out, Violation{CodeStroke, fmt.Sprintf(
			"stroke-width %d, want %d", icon.Style.StrokeWidth, v.style.StrokeWidth)})
	}
	if n := len(icon.Primitives); n < v.style.MinPrimitives || n > v.style.MaxPrimitives {
		out = append(out, Violation{CodeCount, fmt.Sprintf(
			"%d primitives, want %d..%d", n, v.style.MinPrimitives, v.style.MaxPrimitives)})
	}
	for _, p := range icon.Primitives {
		if !p.Kind.IsValid() {
			out = append(out, Violation{CodeForbidden, fmt.Sprintf("element <%s>", p.Kind)})
		}
		for name := range p.Attrs {
			if domain.ForbiddenAttributes[name] {
				out = append(out, Violation{CodeForbidden, fmt.Sprintf(
					"attribute %q on <%s>", name, p.Kind)})
			}
		}
	}
	return out
}

// Markup re-checks an emitted SVG document. Used by the validate
// command, which has only the file on disk to go by.
func (v *Validator) Markup(svg string) []Violation {
	dec := xml.NewDecoder(strings.NewReader(svg))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity

	var out []Violation
	rootSeen := false
	shapes := 0

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return append(out, Violation{CodeMarkup, err.Error()})
		}
		el, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		name := el.Name.Local

		if !rootSeen {
			if name != "svg" {
				return append(out, Violation{CodeMarkup, fmt.Sprintf("root element <%s>, want <svg>", name)})
			}
			rootSeen = true
			out = append(out, v.checkRoot(el.Attr)...)
			continue
		}

		if domain.ForbiddenElements[name] {
			out = append(out, Violation{CodeForbidden, fmt.Sprintf("element <%s>", name)})
			continue
		}
		if domain.PrimitiveKind(name).IsValid() {
			shapes++
			for _, a := range el.Attr {
				if domain.ForbiddenAttributes[a.Name.Local] {
					out = append(out, Violation{CodeForbidden, fmt.Sprintf(
						"attribute %q on <%s>", a.Name.Local, name)})
				}
			}
		}
	}

	if !rootSeen {
		return append(out, Violation{CodeMarkup, "no svg root element"})
	}
	if shapes < v.style.MinPrimitives || shapes > v.style.MaxPrimitives {
		out = append(out, Violation{CodeCount, fmt.Sprintf(
			"%d primitives, want %d..%d", shapes, v.style.MinPrimitives, v.style.MaxPrimitives)})
	}
	return out
}

// checkRoot verifies the house paint spec on the svg root.
func (v *Validator) checkRoot(attrs []xml.Attr) []Violation {
	want := []struct {
		name  string
		value string
	}{
		{"viewBox", v.style.ViewBox()},
		{"fill", "none"},
		{"stroke", v.style.StrokeColor},
		{"stroke-width", strconv.Itoa(v.style.StrokeWidth)},
		{"stroke-linecap", "round"},
		{"stroke-linejoin", "round"},
	}
	got := make(map[string]string, len(attrs))
	for _, a := range attrs {
		got[a.Name.Local] = a.Value
	}

	var out []Violation
	for _, w := range want {
		actual, ok := got[w.name]
		if !ok {
			out = append(out, Violation{CodeStroke, fmt.Sprintf("missing root attribute %q", w.name)})
			continue
		}
		if actual != w.value {
			code := CodeStroke
			if w.name == "viewBox" {
				code = CodeCanvas
			}
			out = append(out, Violation{code, fmt.Sprintf(
				"root %s=%q, want %q", w.name, actual, w.value)})
		}
	}
	return out
}
