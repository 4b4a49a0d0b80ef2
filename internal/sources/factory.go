package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
)

// Factory builds icon sources from settings.
type Factory struct{}

var _ driven.SourceFactory = Factory{}

// NewFactory returns the default factory.
func NewFactory() Factory { return Factory{} }

// Create implements driven.SourceFactory.
func (Factory) Create(settings domain.Settings) (driven.IconSource, error) {
	if !settings.LookupEnabled {
		return Disabled{}, nil
	}
	timeout := time.Duration(settings.SourceTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	switch settings.SourceType {
	case "", "iconify":
		return NewIconify(timeout), nil
	case "github":
		return NewGitHub(context.Background(), settings.GitHubToken, timeout), nil
	case "google":
		return NewGoogle(settings.GoogleAPIKey, settings.GoogleCX, timeout), nil
	case "disabled":
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("%w: icon source %q", domain.ErrUnsupportedType, settings.SourceType)
	}
}

// Types implements driven.SourceFactory.
func (Factory) Types() []string {
	return []string{"iconify", "github", "google", "disabled"}
}
