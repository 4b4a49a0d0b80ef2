package mcp

import (
	"context"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

// mockResolver implements driving.SubjectResolver.
type mockResolver struct {
	subject string
	err     error
}

func (m *mockResolver) Resolve(domain.CategoryRow) (string, error) {
	return m.subject, m.err
}

// mockMaker implements driving.IconMaker.
type mockMaker struct {
	result domain.RowResult
	err    error

	gotCatid   string
	gotSubject string
}

func (m *mockMaker) Make(_ context.Context, catid, subject string) (domain.RowResult, error) {
	m.gotCatid = catid
	m.gotSubject = subject
	return m.result, m.err
}

// mockSource implements driven.IconSource.
type mockSource struct {
	candidates []domain.Candidate
	err        error
}

func (m *mockSource) Type() string  { return "mock" }
func (m *mockSource) Enabled() bool { return true }

func (m *mockSource) Search(context.Context, string, int) ([]domain.Candidate, error) {
	return m.candidates, m.err
}
