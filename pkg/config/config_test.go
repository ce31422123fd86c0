package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "saas", cfg.Defaults.Category)
	assert.Equal(t, "medium", cfg.Defaults.Budget)
	assert.Equal(t, "all", cfg.Defaults.Focus)
	assert.Equal(t, 5, cfg.Defaults.MaxSuggestions)
	assert.Equal(t, 70.0, cfg.Thresholds.PriorityThreshold)
	assert.Equal(t, 80.0, cfg.Thresholds.Similarity)
	assert.Equal(t, "plans", cfg.Plans.Dir)
	assert.True(t, cfg.Plans.WriteFile)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "vantage.toml", `
[defaults]
category = "fintech"
max_suggestions = 10

[thresholds]
priority_threshold = 60

[plans]
dir = "out/plans"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fintech", cfg.Defaults.Category)
	assert.Equal(t, 10, cfg.Defaults.MaxSuggestions)
	assert.Equal(t, 60.0, cfg.Thresholds.PriorityThreshold)
	assert.Equal(t, "out/plans", cfg.Plans.Dir)

	// Unset keys keep their defaults.
	assert.Equal(t, "medium", cfg.Defaults.Budget)
	assert.Equal(t, 80.0, cfg.Thresholds.Similarity)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "vantage.yaml", `
defaults:
  category: ecommerce
output:
  format: toon
  verbose: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ecommerce", cfg.Defaults.Category)
	assert.Equal(t, "toon", cfg.Output.Format)
	assert.True(t, cfg.Output.Verbose)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "vantage.json", `{
		"data": {"leaders_file": "custom-leaders.json"},
		"plans": {"write_file": false}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom-leaders.json", cfg.Data.LeadersFile)
	assert.False(t, cfg.Plans.WriteFile)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadOrDefaultWithoutFiles(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(cwd)

	cfg := LoadOrDefault()
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOrDefaultFindsConfig(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vantage.toml"), []byte(`
[defaults]
category = "healthtech"
`), 0o644))
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	cfg := LoadOrDefault()
	assert.Equal(t, "healthtech", cfg.Defaults.Category)
}
