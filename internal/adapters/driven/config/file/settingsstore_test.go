package file

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.SourceType = "github"
	want.Workers = 8
	want.Style = "blue"
	want.StrokeWidth = 16
	want.GitHubToken = "ghp_test"

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "config may hold credentials")
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSettingsStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(store.Path(), []byte("[style]\nvariant = \"mono\"\n"), 0600))

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "mono", settings.Style)
	assert.Equal(t, domain.DefaultSettings().SourceType, settings.SourceType)
	assert.Equal(t, domain.DefaultSettings().Workers, settings.Workers)
}
