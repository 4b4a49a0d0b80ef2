// Package translate provides the dictionary-backed translator used to
// widen Dutch taxonomy terms for English-indexed icon catalogues.
package translate

import (
	"context"

	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
)

// Ensure Static implements the interface.
var _ driven.Translator = (*Static)(nil)

// nlToEN covers the taxonomy stems that dominate the category tables.
// Unknown terms pass through unchanged, which the query builder treats
// as "no translation".
var nlToEN = map[string]string{
	"boor":         "drill",
	"boren":        "drills",
	"schroef":      "screw",
	"schroeven":    "screws",
	"bout":         "bolt",
	"moer":         "nut",
	"hamer":        "hammer",
	"zaag":         "saw",
	"tang":         "pliers",
	"sleutel":      "key",
	"slot":         "lock",
	"fles":         "bottle",
	"flessen":      "bottles",
	"wijn":         "wine",
	"bier":         "beer",
	"doos":         "box",
	"dozen":        "boxes",
	"krat":         "crate",
	"opslag":       "storage",
	"verpakking":   "packaging",
	"wiel":         "wheel",
	"wielen":       "wheels",
	"band":         "tire",
	"banden":       "tires",
	"fiets":        "bicycle",
	"verf":         "paint",
	"kwast":        "brush",
	"borstel":      "brush",
	"scherm":       "screen",
	"beeldscherm":  "monitor",
	"toetsenbord":  "keyboard",
	"weegschaal":   "scale",
	"gewicht":      "weight",
	"bord":         "plate",
	"borden":       "plates",
	"servies":      "tableware",
	"keuken":       "kitchen",
	"gereedschap":  "tools",
	"veiligheid":   "safety",
	"bescherming":  "protection",
	"verlichting":  "lighting",
	"lamp":         "lamp",
	"kabel":        "cable",
	"stekker":      "plug",
	"batterij":     "battery",
	"accu":         "battery",
	"papier":       "paper",
	"inkt":         "ink",
	"stoel":        "chair",
	"tafel":        "table",
	"kast":         "cabinet",
	"schoonmaak":   "cleaning",
	"zeep":         "soap",
	"handschoenen": "gloves",
	"bril":         "glasses",
	"helm":         "helmet",
}

// Static is the built-in NL to EN dictionary translator.
type Static struct{}

// NewStatic creates the dictionary translator.
func NewStatic() *Static {
	return &Static{}
}

// Translate implements driven.Translator. Only the "en" target is
// populated; other targets return the term unchanged.
func (*Static) Translate(_ context.Context, term, targetLanguage string) (string, error) {
	if targetLanguage != "en" {
		return term, nil
	}
	if en, ok := nlToEN[term]; ok {
		return en, nil
	}
	return term, nil
}

// Noop never translates. Used when query widening should stay within
// the source language.
type Noop struct{}

// Ensure Noop implements the interface.
var _ driven.Translator = Noop{}

// Translate implements driven.Translator.
func (Noop) Translate(_ context.Context, term, _ string) (string, error) {
	return term, nil
}
