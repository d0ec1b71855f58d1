// Package session wires the load-once, build-per-interaction lifecycle: the
// two normalized series are read at startup and cached immutably, then every
// user interaction runs one synchronous filter-derive-assemble pass.
package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/climate-timeline/internal/domain"
	"github.com/couchcryptid/climate-timeline/internal/observability"
)

// SeriesLoader loads one normalized series by source identifier.
type SeriesLoader interface {
	LoadSeries(src domain.Source, path string) (domain.Series, error)
}

// Session holds the cached series for a process lifetime. The cache is
// read-only after New returns, so BuildChart may be called concurrently;
// each call produces a fresh, independent ChartParameters value.
type Session struct {
	observed      domain.Series
	reconstructed domain.Series
	logger        *slog.Logger
	metrics       *observability.Metrics
}

// New loads both sources through the given loader. A structural failure in
// either file fails the whole session — there is no chart worth drawing with
// a source missing entirely.
func New(loader SeriesLoader, observedPath, reconstructedPath string, logger *slog.Logger, metrics *observability.Metrics) (*Session, error) {
	observed, err := loader.LoadSeries(domain.SourceObserved, observedPath)
	if err != nil {
		return nil, fmt.Errorf("load observed series: %w", err)
	}
	reconstructed, err := loader.LoadSeries(domain.SourceReconstructed, reconstructedPath)
	if err != nil {
		return nil, fmt.Errorf("load reconstructed series: %w", err)
	}

	return &Session{
		observed:      observed,
		reconstructed: reconstructed,
		logger:        logger,
		metrics:       metrics,
	}, nil
}

// Observed returns a copy of the cached observed series.
func (s *Session) Observed() domain.Series { return s.observed.Clone() }

// Reconstructed returns a copy of the cached reconstructed series.
func (s *Session) Reconstructed() domain.Series { return s.reconstructed.Clone() }

// BuildChart runs one full pipeline pass for a single interaction.
func (s *Session) BuildChart(req domain.ChartRequest) (domain.ChartParameters, error) {
	start := time.Now()

	params, err := domain.BuildChart(s.observed, s.reconstructed, req)
	if err != nil {
		s.metrics.ChartBuildErrors.Inc()
		s.logger.Warn("chart build rejected", "error", err)
		return domain.ChartParameters{}, err
	}

	s.metrics.ChartsBuilt.Inc()
	s.metrics.ChartBuildSeconds.Observe(time.Since(start).Seconds())
	s.logger.Debug("chart built",
		"observed_points", len(params.Observed.Years),
		"reconstructed_points", len(params.Reconstructed.Years),
		"markers", len(params.Markers),
		"trend", params.Trend != nil,
	)
	return params, nil
}
