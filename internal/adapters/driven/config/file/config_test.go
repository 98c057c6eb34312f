package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Engine)
	assert.Equal(t, "kasir", cfg.Storage.Database)
	assert.False(t, cfg.Verbose)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
verbose = true

[storage]
engine = "snapshot"
dir = "/tmp/kasir"
database = "toko"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "snapshot", cfg.Storage.Engine)
	assert.Equal(t, "/tmp/kasir", cfg.Storage.Dir)
	assert.Equal(t, "toko", cfg.Storage.Database)
	assert.True(t, cfg.Verbose)
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("storage = ["), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyDatabaseFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage]\nengine = \"file\"\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "kasir", cfg.Storage.Database)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Default()
	want.Storage.Engine = "snapshot"
	want.Verbose = true
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
