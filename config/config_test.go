package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccalmels/volcano/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "AA", cfg.Start)
	assert.Equal(t, 30, cfg.Budget)
	assert.Equal(t, 26, cfg.TeamBudget)
	assert.Equal(t, 1, cfg.Workers)
	assert.False(t, cfg.Symmetric)
	assert.NoError(t, cfg.Validate())
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("start: BB\nworkers: 8\nsymmetric: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "BB", cfg.Start)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Symmetric)
	assert.Equal(t, 30, cfg.Budget, "unset keys keep defaults")
	assert.Equal(t, 26, cfg.TeamBudget)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative budget": "budget: -1\n",
		"huge team":       "team_budget: 5000\n",
		"zero workers":    "workers: 0\n",
		"empty start":     "start: \"\"\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestParse_ErrorNamesYamlField(t *testing.T) {
	_, err := config.Parse([]byte("team_budget: -3\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "team_budget")
}

func TestParse_UnknownKeyAndBadYaml(t *testing.T) {
	_, err := config.Parse([]byte("budgett: 3\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)

	_, err = config.Parse([]byte("budget: [1, 2\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "volcano.yaml")
	require.NoError(t, os.WriteFile(path, []byte("budget: 20\nteam_budget: 16\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Budget)
	assert.Equal(t, 16, cfg.TeamBudget)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
