package driven

import "context"

// Translator rewrites a lookup term into a target language.
// It is an injected black box; the core only widens queries with its
// output and never depends on dictionary content.
type Translator interface {
	// Translate returns the term in the target language, or the term
	// unchanged when no translation is known.
	Translate(ctx context.Context, term, targetLanguage string) (string, error)
}
