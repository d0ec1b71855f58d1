package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all tool settings, populated from environment variables.
// Path resolution and file existence belong here and to the commands, not to
// the core pipeline.
type Config struct {
	ObservedPath      string
	ReconstructedPath string

	Theme       string
	OutputPath  string
	ChartWidth  int
	ChartHeight int

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables (optionally .env),
// applying defaults where unset.
func Load() (*Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := &Config{
		ObservedPath:      envOrDefault("OBSERVED_CSV", "data/SPM1_1850-2020_obs.csv"),
		ReconstructedPath: envOrDefault("RECONSTRUCTED_CSV", "data/SPM1_1-2000_recon.csv"),
		Theme:             envOrDefault("CHART_THEME", "classic"),
		OutputPath:        envOrDefault("CHART_OUT", "chart.png"),
		ChartWidth:        1024,
		ChartHeight:       512,
		LogLevel:          envOrDefault("LOG_LEVEL", "info"),
		LogFormat:         envOrDefault("LOG_FORMAT", "json"),
	}

	var err error
	if cfg.ChartWidth, err = parsePositiveInt("CHART_WIDTH", cfg.ChartWidth); err != nil {
		return nil, err
	}
	if cfg.ChartHeight, err = parsePositiveInt("CHART_HEIGHT", cfg.ChartHeight); err != nil {
		return nil, err
	}

	if cfg.ObservedPath == "" {
		return nil, errors.New("OBSERVED_CSV must not be empty")
	}
	if cfg.ReconstructedPath == "" {
		return nil, errors.New("RECONSTRUCTED_CSV must not be empty")
	}
	if cfg.Theme == "" {
		return nil, errors.New("CHART_THEME must not be empty")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}
