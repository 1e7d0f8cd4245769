package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "tr", cfg.Server.DefaultLanguage)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.Equal(t, "enums", cfg.Catalog.Path)
	assert.Equal(t, []string{"en", "tr"}, cfg.Sync.Languages)
	assert.Equal(t, "core", cfg.Sync.Schema)
	assert.True(t, cfg.Sync.DeleteOrphans)
	assert.True(t, cfg.Sync.OnStartup)
	assert.Equal(t, 4, cfg.Sync.Concurrency)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SYNC_LANGUAGES", "de,fr")
	t.Setenv("SYNC_DELETE_ORPHANS", "false")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("SERVER_DEFAULT_LANGUAGE", "en")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []string{"de", "fr"}, cfg.Sync.Languages)
	assert.False(t, cfg.Sync.DeleteOrphans)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "en", cfg.Server.DefaultLanguage)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("CATALOG_SOURCE=storage\nSYNC_SCHEMA=lookup\n"), 0o600)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("CATALOG_SOURCE")
		os.Unsetenv("SYNC_SCHEMA")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "storage", cfg.Catalog.Source)
	assert.Equal(t, "lookup", cfg.Sync.Schema)
}
