package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlog/spendlog/internal/logger"
)

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"spendlog.yaml", "spendlog.toml"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := Default()
			cfg.Store.Path = filepath.Join(dir, "money", "expenses.csv")
			cfg.Categories = []string{"rent", "pets"}
			cfg.Log.Level = logger.LevelDebug
			cfg.Git.AutoCommit = true

			path := filepath.Join(dir, name)
			require.NoError(t, Save(path, cfg))

			got, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, cfg.Store.Path, got.Store.Path)
			assert.Equal(t, cfg.Categories, got.Categories)
			assert.Equal(t, logger.LevelDebug, got.Log.Level)
			assert.Equal(t, cfg.Log.Format, got.Log.Format)
			assert.Equal(t, cfg.Import.DefaultCategory, got.Import.DefaultCategory)
			assert.True(t, got.Git.AutoCommit)
			assert.Equal(t, cfg.Git.AuthorName, got.Git.AuthorName)
			assert.Equal(t, cfg.Git.AuthorEmail, got.Git.AuthorEmail)
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "expenses.csv", cfg.Store.Path)
	assert.Equal(t, logger.LevelWarn, cfg.Log.Level)
	assert.Equal(t, "other", cfg.Import.DefaultCategory)
	assert.False(t, cfg.Git.AutoCommit)
	assert.Empty(t, cfg.Categories)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [rent]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"rent"}, cfg.Categories)
	assert.Equal(t, "other", cfg.Import.DefaultCategory)
	assert.Equal(t, logger.LevelWarn, cfg.Log.Level)
}

func TestLoad_RelativeStorePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spendlog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[store]\npath = \"data/expenses.csv\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "expenses.csv"), cfg.Store.Path)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: [not, a, map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendlog.yaml")
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "path: expenses.csv")
	assert.Contains(t, contents, "default_category: other")
	assert.Contains(t, contents, "auto_commit: false")
}
