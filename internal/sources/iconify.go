package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/iconsmith-cli/internal/logger"
)

const (
	iconifyBaseURL = "https://api.iconify.design"

	// iconifyRPS keeps us well under the public API's informal limits.
	iconifyRPS   = 5
	iconifyBurst = 10

	// maxMarkupBytes caps a single candidate body; icon SVGs are tiny
	// and anything larger is not an icon.
	maxMarkupBytes = 256 << 10
)

// Iconify queries the public Iconify search API and downloads the
// matching SVG bodies.
type Iconify struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

var _ driven.IconSource = (*Iconify)(nil)

// NewIconify creates the adapter with the given hard per-lookup
// timeout.
func NewIconify(timeout time.Duration) *Iconify {
	return &Iconify{
		baseURL: iconifyBaseURL,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(iconifyRPS), iconifyBurst),
		timeout: timeout,
	}
}

// Type implements driven.IconSource.
func (s *Iconify) Type() string { return "iconify" }

// Enabled implements driven.IconSource.
func (s *Iconify) Enabled() bool { return true }

// iconifySearchResponse is the subset of the search payload we read.
type iconifySearchResponse struct {
	Icons []string `json:"icons"`
}

// Search implements driven.IconSource. The whole lookup, search plus
// body downloads, runs under one deadline.
func (s *Iconify) Search(ctx context.Context, query string, max int) ([]domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	names, err := s.searchNames(ctx, query, max)
	if err != nil {
		return nil, err
	}
	logger.Debug("iconify: query %q matched %d icons", query, len(names))

	candidates := make([]domain.Candidate, 0, len(names))
	for _, name := range names {
		markup, srcURL, err := s.fetchIcon(ctx, name)
		if err != nil {
			// One broken body must not sink the lookup; deadline
			// expiry must.
			if ctx.Err() != nil {
				return candidates, fmt.Errorf("%w: %w", domain.ErrLookupFailed, ctx.Err())
			}
			logger.Debug("iconify: skip %s: %v", name, err)
			continue
		}
		candidates = append(candidates, domain.Candidate{
			Title:     name,
			SourceURL: srcURL,
			Markup:    markup,
		})
	}
	return candidates, nil
}

func (s *Iconify) searchNames(ctx context.Context, query string, max int) ([]string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %w", domain.ErrLookupFailed, err)
	}

	u := s.baseURL + "/search?query=" + url.QueryEscape(query) + "&limit=" + strconv.Itoa(max)
	body, err := s.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var payload iconifySearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %v", domain.ErrLookupFailed, err)
	}
	if len(payload.Icons) > max {
		payload.Icons = payload.Icons[:max]
	}
	return payload.Icons, nil
}

// fetchIcon downloads one icon body. Names are "prefix:name" and map
// to /{prefix}/{name}.svg on the API host.
func (s *Iconify) fetchIcon(ctx context.Context, name string) (markup, srcURL string, err error) {
	prefix, icon, ok := strings.Cut(name, ":")
	if !ok {
		return "", "", fmt.Errorf("malformed icon name %q", name)
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return "", "", fmt.Errorf("rate limit wait: %w", err)
	}

	u := fmt.Sprintf("%s/%s/%s.svg", s.baseURL, url.PathEscape(prefix), url.PathEscape(icon))
	body, err := s.get(ctx, u)
	if err != nil {
		return "", "", err
	}
	return string(body), u, nil
}

func (s *Iconify) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: %w by upstream", domain.ErrLookupFailed, domain.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from %s", domain.ErrLookupFailed, resp.StatusCode, u)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMarkupBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrLookupFailed, err)
	}
	return body, nil
}
