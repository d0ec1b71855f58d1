package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/SPM1_1850-2020_obs.csv", cfg.ObservedPath)
	assert.Equal(t, "data/SPM1_1-2000_recon.csv", cfg.ReconstructedPath)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "chart.png", cfg.OutputPath)
	assert.Equal(t, 1024, cfg.ChartWidth)
	assert.Equal(t, 512, cfg.ChartHeight)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("OBSERVED_CSV", "/srv/data/obs.csv")
	t.Setenv("RECONSTRUCTED_CSV", "/srv/data/recon.csv")
	t.Setenv("CHART_THEME", "dark")
	t.Setenv("CHART_OUT", "/tmp/out.png")
	t.Setenv("CHART_WIDTH", "1920")
	t.Setenv("CHART_HEIGHT", "1080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/data/obs.csv", cfg.ObservedPath)
	assert.Equal(t, "/srv/data/recon.csv", cfg.ReconstructedPath)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "/tmp/out.png", cfg.OutputPath)
	assert.Equal(t, 1920, cfg.ChartWidth)
	assert.Equal(t, 1080, cfg.ChartHeight)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_InvalidDimensions(t *testing.T) {
	for name, env := range map[string][2]string{
		"non-numeric width": {"CHART_WIDTH", "wide"},
		"zero height":       {"CHART_HEIGHT", "0"},
		"negative width":    {"CHART_WIDTH", "-100"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), env[0])
		})
	}
}
