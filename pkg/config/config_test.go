package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/bastiangx/wordsort/internal/utils"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "en", cfg.List.Locale)
	assert.Equal(t, filepath.Join("data", "words.txt"), cfg.Sampler.Source)
	assert.Equal(t, 10, cfg.Sampler.DefaultCount)
	assert.Equal(t, 64, cfg.Server.MaxLimit)
	assert.Equal(t, 24, cfg.CLI.DefaultLimit)
	assert.True(t, cfg.CLI.LiveSuggest)
}

func TestListConfigTag(t *testing.T) {
	testCases := []struct {
		locale string
		want   language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"ja", language.Japanese},
		{"de", language.German},
		{"not a tag!!", language.English},
	}
	for _, tc := range testCases {
		cfg := ListConfig{Locale: tc.locale}
		assert.Equal(t, tc.want, cfg.Tag(), "locale %q", tc.locale)
	}
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	// A second init reads the file back rather than rewriting it.
	again, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	want := DefaultConfig()
	want.List.Locale = "ja"
	want.Sampler.DefaultCount = 25
	want.CLI.LiveSuggest = false
	require.NoError(t, utils.SaveTOMLFile(want, path))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[list]\nlocale = \"de\"\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.List.Locale)
	// Untouched sections keep builtin defaults.
	assert.Equal(t, DefaultConfig().Sampler, cfg.Sampler)
	assert.Equal(t, DefaultConfig().Server, cfg.Server)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	want := DefaultConfig()
	want.Server.MaxLimit = 16
	require.NoError(t, utils.SaveTOMLFile(want, path))

	cfg, usedPath, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, usedPath)
	assert.Equal(t, 16, cfg.Server.MaxLimit)
}
