package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Biz")
	cfg.Data.Dir = "books/data"
	cfg.Report.Comparison = "prior-year"

	path := filepath.Join(t.TempDir(), "statline.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Business.Name, got.Business.Name)
	assert.Equal(t, cfg.Data.Dir, got.Data.Dir)
	assert.Equal(t, cfg.Data.CacheTTLSeconds, got.Data.CacheTTLSeconds)
	assert.Equal(t, cfg.Report.DetailLevel, got.Report.DetailLevel)
	assert.Equal(t, cfg.Report.Comparison, got.Report.Comparison)
	assert.Equal(t, cfg.Report.MarkCurrentMonthPartial, got.Report.MarkCurrentMonthPartial)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Company")

	assert.Equal(t, "My Company", cfg.Business.Name)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, 300, cfg.Data.CacheTTLSeconds)
	assert.Equal(t, "account", cfg.Report.DetailLevel)
	assert.Equal(t, "none", cfg.Report.Comparison)
	assert.True(t, cfg.Report.MarkCurrentMonthPartial)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Biz")
	path := filepath.Join(t.TempDir(), "statline.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Biz")
	assert.Contains(t, contents, "dir: data")
	assert.Contains(t, contents, "cache_ttl_seconds: 300")
	assert.Contains(t, contents, "detail_level: account")
}
