// Package file persists settings as TOML under the iconsmith config
// directory.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// fileSettings is the on-disk schema. Kept separate from the domain
// type so file keys stay stable if the domain struct evolves.
type fileSettings struct {
	Lookup struct {
		Enabled       bool   `toml:"enabled"`
		Source        string `toml:"source"`
		TimeoutSecs   int    `toml:"timeout_seconds"`
		MaxCandidates int    `toml:"max_candidates"`
		Workers       int    `toml:"workers"`
	} `toml:"lookup"`

	Style struct {
		Variant     string `toml:"variant"`
		StrokeColor string `toml:"stroke_color"`
		StrokeWidth int    `toml:"stroke_width"`
	} `toml:"style"`

	Credentials struct {
		GitHubToken  string `toml:"github_token"`
		GoogleAPIKey string `toml:"google_api_key"`
		GoogleCX     string `toml:"google_cx"`
	} `toml:"credentials"`
}

// SettingsStore is a TOML-file implementation of driven.SettingsStore.
type SettingsStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSettingsStore creates a store rooted at configDir. An empty
// configDir defaults to ~/.iconsmith.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".iconsmith")
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}
	return &SettingsStore{filePath: filepath.Join(configDir, "config.toml")}, nil
}

// Load implements driven.SettingsStore. A missing file yields the
// defaults; file values override them field by field.
func (s *SettingsStore) Load() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := domain.DefaultSettings()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("read config: %w", err)
	}

	var fs fileSettings
	fs.Lookup.Enabled = settings.LookupEnabled
	fs.Lookup.Source = settings.SourceType
	fs.Lookup.TimeoutSecs = settings.SourceTimeoutSeconds
	fs.Lookup.MaxCandidates = settings.SourceMaxCandidates
	fs.Lookup.Workers = settings.Workers
	fs.Style.Variant = settings.Style
	if err := toml.Unmarshal(data, &fs); err != nil {
		return settings, fmt.Errorf("parse config: %w", err)
	}

	settings.LookupEnabled = fs.Lookup.Enabled
	settings.SourceType = fs.Lookup.Source
	settings.SourceTimeoutSeconds = fs.Lookup.TimeoutSecs
	settings.SourceMaxCandidates = fs.Lookup.MaxCandidates
	settings.Workers = fs.Lookup.Workers
	settings.Style = fs.Style.Variant
	settings.StrokeColorHex = fs.Style.StrokeColor
	settings.StrokeWidth = fs.Style.StrokeWidth
	settings.GitHubToken = fs.Credentials.GitHubToken
	settings.GoogleAPIKey = fs.Credentials.GoogleAPIKey
	settings.GoogleCX = fs.Credentials.GoogleCX
	return settings, nil
}

// Save implements driven.SettingsStore.
func (s *SettingsStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fs fileSettings
	fs.Lookup.Enabled = settings.LookupEnabled
	fs.Lookup.Source = settings.SourceType
	fs.Lookup.TimeoutSecs = settings.SourceTimeoutSeconds
	fs.Lookup.MaxCandidates = settings.SourceMaxCandidates
	fs.Lookup.Workers = settings.Workers
	fs.Style.Variant = settings.Style
	fs.Style.StrokeColor = settings.StrokeColorHex
	fs.Style.StrokeWidth = settings.StrokeWidth
	fs.Credentials.GitHubToken = settings.GitHubToken
	fs.Credentials.GoogleAPIKey = settings.GoogleAPIKey
	fs.Credentials.GoogleCX = settings.GoogleCX

	data, err := toml.Marshal(fs)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	// Credentials may be present; keep the file private.
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
