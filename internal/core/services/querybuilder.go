package services

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/iconsmith-cli/internal/logger"
)

// tokenPattern extracts lowercase alphanumeric tokens from a subject.
var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// dutchStopwords is the language-detection heuristic: a subject
// containing any of these is treated as Dutch.
var dutchStopwords = map[string]bool{
	"de": true, "het": true, "een": true, "en": true, "voor": true,
	"met": true, "op": true, "onder": true, "boven": true,
}

// Sample synonym dictionaries. The full dictionary content is a
// configuration concern; these cover the common taxonomy stems so the
// query widening path is exercised out of the box.
var (
	synonymsEN = map[string][]string{
		"fasteners": {"screw", "bolt", "nut"},
		"drill":     {"drill", "bit", "tool"},
		"laptop":    {"notebook", "computer"},
		"printer":   {"laser", "inkjet"},
	}

	synonymsNL = map[string][]string{
		"bevestigers": {"schroef", "bout", "moer"},
		"boren":       {"boor", "accuboormachine", "kolomboor"},
		"schroeven":   {"schroef", "bout", "bevestiger"},
		"laptop":      {"notebook", "computer"},
		"printer":     {"laser", "inkjet"},
	}
)

// QueryBuilder widens a subject into a ranked list of lookup queries.
// Wider queries (more expanded terms) come first; the bare subject
// tokens always survive at the front of each query.
type QueryBuilder struct {
	en, nl     map[string][]string
	translator driven.Translator
}

// NewQueryBuilder creates a query builder. The translator is optional;
// when present, tokens are translated to English before expansion so
// catalogues indexed in English still match Dutch taxonomy terms.
func NewQueryBuilder(translator driven.Translator) *QueryBuilder {
	return &QueryBuilder{en: synonymsEN, nl: synonymsNL, translator: translator}
}

// Tokenize splits a subject into lowercase alphanumeric tokens.
func Tokenize(subject string) []string {
	return tokenPattern.FindAllString(strings.ToLower(subject), -1)
}

// DetectLanguage returns "nl" when Dutch stopwords appear, "en"
// otherwise.
func DetectLanguage(tokens []string) string {
	for _, t := range tokens {
		if dutchStopwords[t] {
			return "nl"
		}
	}
	return "en"
}

// Build returns up to maxTerms-wide queries for the subject, widest
// first, deduplicated. An empty subject yields nil.
func (b *QueryBuilder) Build(ctx context.Context, subject string, maxTerms int) []string {
	tokens := Tokenize(subject)
	if len(tokens) == 0 {
		return nil
	}

	lang := DetectLanguage(tokens)
	dict := b.en
	if lang == "nl" {
		dict = b.nl
	}

	expanded := b.expand(ctx, tokens, dict, lang)

	// Longest expansions first, then promote the original tokens so
	// the subject itself is always part of the widest query.
	sort.SliceStable(expanded, func(i, j int) bool {
		return len(expanded[i]) > len(expanded[j])
	})
	for i := len(tokens) - 1; i >= 0; i-- {
		base := singular(tokens[i])
		for j, term := range expanded {
			if term == base || term == tokens[i] {
				expanded = append(expanded[:j], expanded[j+1:]...)
				expanded = append([]string{term}, expanded...)
				break
			}
		}
	}

	if maxTerms <= 0 || maxTerms > len(expanded) {
		maxTerms = len(expanded)
	}
	var queries []string
	seen := make(map[string]bool)
	for k := maxTerms; k >= 1; k-- {
		q := strings.Join(expanded[:k], " ")
		if !seen[q] {
			seen[q] = true
			queries = append(queries, q)
		}
	}
	logger.Debug("query builder: %q -> %d queries (%s)", subject, len(queries), lang)
	return queries
}

// expand grows the token set through translation and the synonym
// dictionary, preserving first-seen order.
func (b *QueryBuilder) expand(ctx context.Context, tokens []string, dict map[string][]string, lang string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(term string) {
		if term != "" && !seen[term] {
			seen[term] = true
			out = append(out, term)
		}
	}

	for _, t := range tokens {
		base := t
		if _, ok := dict[t]; !ok {
			if s := singular(t); s != t {
				if _, ok := dict[s]; ok {
					base = s
				}
			}
		}
		add(base)
		for _, syn := range dict[base] {
			add(syn)
		}
		if b.translator != nil && lang != "en" {
			translated, err := b.translator.Translate(ctx, base, "en")
			if err == nil && translated != base {
				add(translated)
			}
		}
	}
	return out
}

// singular strips a plural "s"; good enough for taxonomy stems.
func singular(t string) string {
	if len(t) > 3 && strings.HasSuffix(t, "s") {
		return t[:len(t)-1]
	}
	return t
}
