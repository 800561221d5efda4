package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	originalHomeDir := osUserHomeDir
	defer func() { osUserHomeDir = originalHomeDir }()
	osUserHomeDir = func() (string, error) { return "/home/dev", nil }

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/dev", ".config/kbridge", "configurations.yaml"), path)
}

func TestLoadMissingFileYieldsEmpty(t *testing.T) {
	file, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Empty(t, file.Configurations)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configurations.yaml")
	require.NoError(t, os.WriteFile(path, []byte("configurations: [whoops"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing configurations")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	// Save creates intermediate directories.
	path := filepath.Join(t.TempDir(), "nested", "dir", "configurations.yaml")
	in := File{Configurations: []RunConfiguration{
		{Name: "Debug billing", Command: "dlv", Target: "billing", Namespace: "dev", Port: 9229},
		{Name: "billing (kbridge)", Type: TypeConnection},
	}}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStoreCreateNewNamesUniquely(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configurations.yaml")
	store, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	for i := 0; i < 3; i++ {
		require.NoError(t, store.CreateNew())
	}

	configs, err := store.List()
	require.NoError(t, err)
	require.Len(t, configs, 3)
	assert.Equal(t, "New configuration", configs[0].Name)
	assert.Equal(t, "New configuration (2)", configs[1].Name)
	assert.Equal(t, "New configuration (3)", configs[2].Name)
}

func TestGeneratedByConnect(t *testing.T) {
	assert.True(t, RunConfiguration{Type: TypeConnection}.GeneratedByConnect())
	assert.True(t, RunConfiguration{Type: TypeLegacyDebug}.GeneratedByConnect())
	assert.False(t, RunConfiguration{Type: ""}.GeneratedByConnect())
	assert.False(t, RunConfiguration{Type: "user-defined"}.GeneratedByConnect())
}
