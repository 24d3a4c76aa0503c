package update

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `android_version: "19"
manifest_names:
  - chrome.ini
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "19", cfg.AndroidVersion)
	assert.Equal(t, []string{"chrome.ini"}, cfg.ManifestNames)
	// unset fields keep their defaults
	assert.Equal(t, ".ini", cfg.WPTExtension)
	assert.Equal(t, []string{"expected:", "disabled:", "fuzzy:"}, cfg.Subcategories)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("android_version: [\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestNewBuildsEngine(t *testing.T) {
	t.Parallel()

	eng := New(DefaultConfig(), false, nil)
	assert.NotNil(t, eng)
}
