// Command chartgen loads the two SPM1 source files, runs one chart-pipeline
// pass with the filters given on the command line, and writes the rendered
// chart as a PNG.
//
// Usage:
//
//	go run ./cmd/chartgen \
//	  -obs data/SPM1_1850-2020_obs.csv \
//	  -recon data/SPM1_1-2000_recon.csv \
//	  -theme classic -year-range 1900:2020 -out chart.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/climate-timeline/internal/config"
	"github.com/couchcryptid/climate-timeline/internal/domain"
	"github.com/couchcryptid/climate-timeline/internal/ingest"
	"github.com/couchcryptid/climate-timeline/internal/observability"
	"github.com/couchcryptid/climate-timeline/internal/render"
	"github.com/couchcryptid/climate-timeline/internal/session"
)

func main() {
	if err := run(); err != nil {
		slog.Error("chartgen failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	obsPath := flag.String("obs", cfg.ObservedPath, "path to the observed series CSV")
	reconPath := flag.String("recon", cfg.ReconstructedPath, "path to the reconstructed series CSV")
	outPath := flag.String("out", cfg.OutputPath, "output PNG path")
	theme := flag.String("theme", cfg.Theme, "theme token (classic, dark, print)")
	yearRange := flag.String("year-range", "", "inclusive year filter, min:max")
	anomalyRange := flag.String("anomaly-range", "", "inclusive anomaly filter in degrees C, min:max")
	highlight := flag.String("highlight", "", "shaded year band, start:end")
	hideObserved := flag.Bool("hide-observed", false, "drop the observed series from the chart")
	hideReconstructed := flag.Bool("hide-reconstructed", false, "drop the reconstructed series from the chart")
	flag.Parse()

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	loader := ingest.NewLoader(logger, metrics)
	sess, err := session.New(loader, *obsPath, *reconPath, logger, metrics)
	if err != nil {
		return err
	}

	spec := domain.FilterSpec{
		Visible: domain.SourceSet{
			Observed:      !*hideObserved,
			Reconstructed: !*hideReconstructed,
		},
	}
	if spec.YearRange, err = parseRangeFlag("year-range", *yearRange); err != nil {
		return err
	}
	if spec.AnomalyRange, err = parseRangeFlag("anomaly-range", *anomalyRange); err != nil {
		return err
	}

	req := domain.ChartRequest{
		Filter:  spec,
		Theme:   domain.Theme(*theme),
		Markers: domain.DefaultMarkerCatalog(),
	}
	if *highlight != "" {
		band, err := parseRangeFlag("highlight", *highlight)
		if err != nil {
			return err
		}
		req.Highlight = &domain.HighlightBand{StartYear: band.Min, EndYear: band.Max}
	}

	params, err := sess.BuildChart(req)
	if err != nil {
		return err
	}

	f, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := render.PNG(params, f, cfg.ChartWidth, cfg.ChartHeight); err != nil {
		return err
	}

	logger.Info("chart written",
		"path", *outPath,
		"observed_points", len(params.Observed.Years),
		"reconstructed_points", len(params.Reconstructed.Years),
		"trend", params.Trend != nil,
	)
	if params.Trend != nil {
		logger.Info("observed trend", "per_decade_c", params.Trend.SlopePerDecade())
	}
	return nil
}

// parseRangeFlag parses "min:max" into a Range; empty input means no filter.
func parseRangeFlag(name, value string) (*domain.Range, error) {
	if value == "" {
		return nil, nil
	}
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("flag -%s: want min:max, got %q", name, value)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("flag -%s: bad min %q", name, parts[0])
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("flag -%s: bad max %q", name, parts[1])
	}
	return &domain.Range{Min: lo, Max: hi}, nil
}
