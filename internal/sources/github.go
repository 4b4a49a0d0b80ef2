package sources

import (
	"context"
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/iconsmith-cli/internal/logger"
)

// GitHub searches public repositories for SVG files matching the
// query. Useful against curated icon monorepos; noisier than a
// dedicated icon index, which is exactly what the ranker is for.
type GitHub struct {
	gh      *gh.Client
	timeout time.Duration
}

var _ driven.IconSource = (*GitHub)(nil)

// NewGitHub creates the adapter. An empty token falls back to
// unauthenticated access with its much lower search quota.
func NewGitHub(ctx context.Context, token string, timeout time.Duration) *GitHub {
	var client *gh.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		tc := oauth2.NewClient(ctx, ts)
		tc.Timeout = timeout
		client = gh.NewClient(tc)
	} else {
		client = gh.NewClient(nil)
	}
	return &GitHub{gh: client, timeout: timeout}
}

// Type implements driven.IconSource.
func (s *GitHub) Type() string { return "github" }

// Enabled implements driven.IconSource.
func (s *GitHub) Enabled() bool { return true }

// Search implements driven.IconSource.
func (s *GitHub) Search(ctx context.Context, query string, max int) ([]domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	perPage := max
	if perPage > 100 {
		perPage = 100
	}
	opts := &gh.SearchOptions{
		TextMatch:   false,
		ListOptions: gh.ListOptions{PerPage: perPage},
	}
	q := fmt.Sprintf("%s extension:svg in:path", query)

	result, _, err := s.gh.Search.Code(ctx, q, opts)
	if err != nil {
		var rateErr *gh.RateLimitError
		if errors.As(err, &rateErr) {
			return nil, fmt.Errorf("%w: %w by github search until %s",
				domain.ErrLookupFailed, domain.ErrRateLimited, rateErr.Rate.Reset.Format(time.RFC3339))
		}
		return nil, fmt.Errorf("%w: github search: %v", domain.ErrLookupFailed, err)
	}
	logger.Debug("github: query %q matched %d files", query, len(result.CodeResults))

	candidates := make([]domain.Candidate, 0, len(result.CodeResults))
	for _, item := range result.CodeResults {
		if len(candidates) >= max {
			break
		}
		markup, err := s.fetchFile(ctx, item)
		if err != nil {
			if ctx.Err() != nil {
				return candidates, fmt.Errorf("%w: %w", domain.ErrLookupFailed, ctx.Err())
			}
			logger.Debug("github: skip %s: %v", item.GetPath(), err)
			continue
		}
		candidates = append(candidates, domain.Candidate{
			Title:     item.GetName(),
			SourceURL: item.GetHTMLURL(),
			Markup:    markup,
		})
	}
	return candidates, nil
}

func (s *GitHub) fetchFile(ctx context.Context, item *gh.CodeResult) (string, error) {
	repo := item.GetRepository()
	content, _, _, err := s.gh.Repositories.GetContents(
		ctx, repo.GetOwner().GetLogin(), repo.GetName(), item.GetPath(), nil)
	if err != nil {
		return "", fmt.Errorf("get contents: %w", err)
	}
	if content == nil {
		return "", fmt.Errorf("path %s is a directory", item.GetPath())
	}
	decoded, err := content.GetContent()
	if err != nil {
		return "", fmt.Errorf("decode content: %w", err)
	}
	if len(decoded) > maxMarkupBytes {
		return "", fmt.Errorf("file %s too large (%d bytes)", item.GetPath(), len(decoded))
	}
	return decoded, nil
}
