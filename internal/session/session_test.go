package session_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/climate-timeline/internal/domain"
	"github.com/couchcryptid/climate-timeline/internal/observability"
	"github.com/couchcryptid/climate-timeline/internal/session"
)

// stubLoader serves canned series keyed by source.
type stubLoader struct {
	series map[domain.Source]domain.Series
	err    error
}

func (s *stubLoader) LoadSeries(src domain.Source, _ string) (domain.Series, error) {
	if s.err != nil {
		return domain.Series{}, s.err
	}
	return s.series[src], nil
}

func testSeries(src domain.Source, points ...[2]float64) domain.Series {
	s := domain.Series{Source: src}
	for _, p := range points {
		s.Records = append(s.Records, domain.TemperatureRecord{Year: p[0], Anomaly: p[1], Source: src})
	}
	return s
}

func newTestSession(t *testing.T) (*session.Session, *observability.Metrics) {
	t.Helper()
	loader := &stubLoader{series: map[domain.Source]domain.Series{
		domain.SourceObserved:      testSeries(domain.SourceObserved, [2]float64{2018, 0.9}, [2]float64{2019, 1.0}, [2]float64{2020, 1.1}),
		domain.SourceReconstructed: testSeries(domain.SourceReconstructed, [2]float64{1, -0.2}, [2]float64{1000, 0.0}),
	}}
	metrics := observability.NewMetricsForTesting()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sess, err := session.New(loader, "obs.csv", "recon.csv", logger, metrics)
	require.NoError(t, err)
	return sess, metrics
}

func TestSession_BuildChart(t *testing.T) {
	sess, metrics := newTestSession(t)

	params, err := sess.BuildChart(domain.ChartRequest{
		Filter:  domain.FilterSpec{Visible: domain.AllSources()},
		Theme:   domain.ThemeClassic,
		Markers: domain.DefaultMarkerCatalog(),
	})
	require.NoError(t, err)

	assert.Len(t, params.Observed.Years, 3)
	assert.Len(t, params.Reconstructed.Years, 2)
	require.NotNil(t, params.Trend)
	assert.InDelta(t, 1.0, params.Trend.SlopePerDecade(), 1e-9)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ChartsBuilt))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.ChartBuildErrors))
}

func TestSession_BuildChart_ConfigurationError(t *testing.T) {
	sess, metrics := newTestSession(t)

	_, err := sess.BuildChart(domain.ChartRequest{
		Filter: domain.FilterSpec{Visible: domain.AllSources()},
		Theme:  domain.Theme("neon"),
	})
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.ChartsBuilt))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ChartBuildErrors))
}

func TestSession_EachInteractionIsIndependent(t *testing.T) {
	sess, _ := newTestSession(t)
	req := domain.ChartRequest{
		Filter: domain.FilterSpec{Visible: domain.AllSources()},
		Theme:  domain.ThemeClassic,
	}

	first, err := sess.BuildChart(req)
	require.NoError(t, err)

	// Mutating one interaction's output must not leak into the next.
	first.Observed.Years[0] = -9999

	second, err := sess.BuildChart(req)
	require.NoError(t, err)
	assert.Equal(t, 2018.0, second.Observed.Years[0])
}

func TestSession_AccessorsReturnCopies(t *testing.T) {
	sess, _ := newTestSession(t)

	obs := sess.Observed()
	require.NotEmpty(t, obs.Records)
	obs.Records[0].Anomaly = 42

	assert.Equal(t, 0.9, sess.Observed().Records[0].Anomaly)
}

func TestSession_New_LoadFailure(t *testing.T) {
	loader := &stubLoader{err: errors.New("disk on fire")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := session.New(loader, "obs.csv", "recon.csv", logger, observability.NewMetricsForTesting())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load observed series")
}
