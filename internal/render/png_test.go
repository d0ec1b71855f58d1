package render

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/couchcryptid/climate-timeline/internal/domain"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func buildParams(t *testing.T, req domain.ChartRequest) domain.ChartParameters {
	t.Helper()
	observed := domain.Series{Source: domain.SourceObserved, Records: []domain.TemperatureRecord{
		{Year: 1850, Anomaly: -0.2, Source: domain.SourceObserved},
		{Year: 1900, Anomaly: -0.1, Source: domain.SourceObserved},
		{Year: 1950, Anomaly: math.NaN(), Source: domain.SourceObserved},
		{Year: 2000, Anomaly: 0.6, Source: domain.SourceObserved},
		{Year: 2020, Anomaly: 1.1, Source: domain.SourceObserved},
	}}
	reconstructed := domain.Series{Source: domain.SourceReconstructed, Records: []domain.TemperatureRecord{
		{Year: 1, Anomaly: -0.2, Source: domain.SourceReconstructed},
		{Year: 1000, Anomaly: 0.0, Source: domain.SourceReconstructed},
		{Year: 2000, Anomaly: 0.2, Source: domain.SourceReconstructed},
	}}

	params, err := domain.BuildChart(observed, reconstructed, req)
	require.NoError(t, err)
	return params
}

func TestPNG_FullChart(t *testing.T) {
	params := buildParams(t, domain.ChartRequest{
		Filter:    domain.FilterSpec{Visible: domain.AllSources()},
		Theme:     domain.ThemeClassic,
		Markers:   domain.DefaultMarkerCatalog(),
		Highlight: &domain.HighlightBand{StartYear: 1970, EndYear: 2020},
	})

	var buf bytes.Buffer
	require.NoError(t, PNG(params, &buf, 800, 400))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
	assert.Greater(t, buf.Len(), 1000)
}

func TestPNG_EmptyChartRendersBlankCanvas(t *testing.T) {
	params := buildParams(t, domain.ChartRequest{
		Filter: domain.FilterSpec{Visible: domain.SourceSet{}},
		Theme:  domain.ThemeClassic,
	})

	var buf bytes.Buffer
	require.NoError(t, PNG(params, &buf, 0, 0))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestSplitAtGaps(t *testing.T) {
	years := []float64{1, 2, 3, 4, 5}
	anomalies := []float64{0.1, math.NaN(), 0.3, 0.4, math.NaN()}

	segs := splitAtGaps(years, anomalies)
	require.Len(t, segs, 2)
	assert.Equal(t, []float64{1}, segs[0].xs)
	assert.Equal(t, []float64{3, 4}, segs[1].xs)
	assert.Equal(t, []float64{0.3, 0.4}, segs[1].ys)
}

func TestLineSeries_SinglePointPadded(t *testing.T) {
	series := lineSeries(domain.LineSeries{
		Name:      "Observed",
		Color:     "#FF6347",
		Years:     []float64{2020},
		Anomalies: []float64{1.1},
	}, 2)

	require.Len(t, series, 1)
	cs, ok := series[0].(chart.ContinuousSeries)
	require.True(t, ok)
	assert.Equal(t, []float64{2020, 2020.5}, cs.XValues)
	assert.Equal(t, []float64{1.1, 1.1}, cs.YValues)
}
