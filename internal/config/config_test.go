package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 3, cfg.MinTermLength)
	require.Equal(t, 5, cfg.MaxResults)
	require.Equal(t, 250, cfg.DebounceMs)
	require.Equal(t, "us", cfg.Country)
	require.True(t, cfg.UISettings.ShowHistory)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	cs := NewConfigService()

	want := &Config{
		Version:       1,
		Country:       "de",
		MinTermLength: 4,
		MaxResults:    10,
		DebounceMs:    100,
		UISettings:    UISettings{ShowHistory: false, ShowPreviewURL: true},
	}
	require.NoError(t, cs.SaveToPath(want, path))

	got, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadFillsMissingFieldsWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("version = 1\ncountry = \"fr\"\n"), 0644))

	cs := NewConfigService()
	got, err := cs.LoadFromPath(path)
	require.NoError(t, err)

	require.Equal(t, "fr", got.Country)
	require.Equal(t, 3, got.MinTermLength)
	require.Equal(t, 5, got.MaxResults)
	require.Equal(t, 250, got.DebounceMs)
}

func TestLoadFromMissingPathFails(t *testing.T) {
	cs := NewConfigService()
	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("version = [broken"), 0644))

	cs := NewConfigService()
	_, err := cs.LoadFromPath(path)
	require.Error(t, err)
}
