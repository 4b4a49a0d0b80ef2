package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/iconsmith-cli/internal/logger"
)

// Google queries a Programmable Search Engine for SVG files and
// downloads the hits. Requires an API key and a search engine id.
type Google struct {
	apiKey  string
	cx      string
	client  *http.Client
	timeout time.Duration
}

var _ driven.IconSource = (*Google)(nil)

// NewGoogle creates the adapter.
func NewGoogle(apiKey, cx string, timeout time.Duration) *Google {
	return &Google{
		apiKey:  apiKey,
		cx:      cx,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Type implements driven.IconSource.
func (s *Google) Type() string { return "google" }

// Enabled implements driven.IconSource.
func (s *Google) Enabled() bool { return s.apiKey != "" && s.cx != "" }

// Search implements driven.IconSource.
func (s *Google) Search(ctx context.Context, query string, max int) ([]domain.Candidate, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("%w: google source not configured", domain.ErrLookupFailed)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	svc, err := customsearch.NewService(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: create search service: %v", domain.ErrLookupFailed, err)
	}

	// The API caps num at 10 per request; one page is plenty for a
	// single query, the query builder already fans out.
	num := int64(max)
	if num > 10 {
		num = 10
	}
	result, err := svc.Cse.List().
		Context(ctx).
		Q(query + " icon").
		Cx(s.cx).
		FileType("svg").
		Num(num).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: google search: %v", domain.ErrLookupFailed, err)
	}
	logger.Debug("google: query %q matched %d items", query, len(result.Items))

	candidates := make([]domain.Candidate, 0, len(result.Items))
	for _, item := range result.Items {
		if len(candidates) >= max {
			break
		}
		markup, err := s.download(ctx, item.Link)
		if err != nil {
			if ctx.Err() != nil {
				return candidates, fmt.Errorf("%w: %w", domain.ErrLookupFailed, ctx.Err())
			}
			logger.Debug("google: skip %s: %v", item.Link, err)
			continue
		}
		candidates = append(candidates, domain.Candidate{
			Title:     item.Title,
			SourceURL: item.Link,
			Markup:    markup,
		})
	}
	return candidates, nil
}

func (s *Google) download(ctx context.Context, u string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMarkupBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
