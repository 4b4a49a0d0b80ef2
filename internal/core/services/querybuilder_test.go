package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranslator struct {
	dict map[string]string
}

func (f fakeTranslator) Translate(_ context.Context, term, target string) (string, error) {
	if target != "en" {
		return term, nil
	}
	if v, ok := f.dict[term]; ok {
		return v, nil
	}
	return term, nil
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"boren", "frezen", "12mm"}, Tokenize("Boren & Frezen (12mm)"))
	assert.Empty(t, Tokenize("&&&"))
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "nl", DetectLanguage([]string{"boren", "voor", "hout"}))
	assert.Equal(t, "en", DetectLanguage([]string{"drills", "for", "wood"}))
}

func TestBuildWidestFirst(t *testing.T) {
	qb := NewQueryBuilder(nil)

	queries := qb.Build(context.Background(), "Fasteners", 3)
	require.NotEmpty(t, queries)

	// Widest first, narrowing down to a single term.
	for i := 1; i < len(queries); i++ {
		prev := strings.Fields(queries[i-1])
		cur := strings.Fields(queries[i])
		assert.Greater(t, len(prev), len(cur))
	}

	// The subject's own token heads every query.
	for _, q := range queries {
		assert.Equal(t, "fasteners", strings.Fields(q)[0])
	}
}

func TestBuildUsesTranslator(t *testing.T) {
	qb := NewQueryBuilder(fakeTranslator{dict: map[string]string{"hamer": "hammer"}})

	// "voor" marks the subject as Dutch.
	queries := qb.Build(context.Background(), "Hamer voor timmerwerk", 4)
	require.NotEmpty(t, queries)
	assert.Contains(t, queries[0], "hammer")
}

func TestBuildEmptySubject(t *testing.T) {
	qb := NewQueryBuilder(nil)
	assert.Nil(t, qb.Build(context.Background(), "  ", 3))
}

func TestBuildDeterministic(t *testing.T) {
	qb := NewQueryBuilder(nil)
	a := qb.Build(context.Background(), "Boren en zagen", 3)
	b := qb.Build(context.Background(), "Boren en zagen", 3)
	assert.Equal(t, a, b)
}
