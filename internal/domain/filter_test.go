package domain

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSeries(src Source, points ...[2]float64) Series {
	s := Series{Source: src}
	for _, p := range points {
		s.Records = append(s.Records, TemperatureRecord{Year: p[0], Anomaly: p[1], Source: src})
	}
	return s
}

func TestFilter_IdentityLaw(t *testing.T) {
	series := makeSeries(SourceObserved, [2]float64{1850, -0.2}, [2]float64{1900, 0.1}, [2]float64{2020, 1.1})
	// A missing anomaly must survive an unrestricted filter too.
	series.Records = append(series.Records, TemperatureRecord{Year: 1925, Anomaly: math.NaN(), Source: SourceObserved})

	spec := FilterSpec{Visible: AllSources()}
	got, err := Filter(series, spec)
	require.NoError(t, err)

	if diff := cmp.Diff(series, got, cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("unrestricted filter changed the series (-want +got):\n%s", diff)
	}
}

func TestFilter_HiddenSourceYieldsEmpty(t *testing.T) {
	series := makeSeries(SourceReconstructed, [2]float64{1000, -0.1})

	got, err := Filter(series, FilterSpec{Visible: SourceSet{Observed: true}})
	require.NoError(t, err)
	assert.True(t, got.Empty())
	assert.Equal(t, SourceReconstructed, got.Source)
}

func TestFilter_YearRangeInclusiveBounds(t *testing.T) {
	series := makeSeries(SourceObserved,
		[2]float64{1899, 0}, [2]float64{1900, 0}, [2]float64{1950, 0}, [2]float64{2000, 0}, [2]float64{2001, 0})

	got, err := Filter(series, FilterSpec{
		Visible:   AllSources(),
		YearRange: &Range{Min: 1900, Max: 2000},
	})
	require.NoError(t, err)
	require.Equal(t, 3, got.Len())
	assert.Equal(t, 1900.0, got.Records[0].Year)
	assert.Equal(t, 2000.0, got.Records[2].Year)
}

func TestFilter_AnomalyRange(t *testing.T) {
	t.Run("keeps only in-range records", func(t *testing.T) {
		series := makeSeries(SourceObserved, [2]float64{1900, 0.5}, [2]float64{1950, 0.1})

		got, err := Filter(series, FilterSpec{
			Visible:      AllSources(),
			AnomalyRange: &Range{Min: -0.2, Max: 0.3},
		})
		require.NoError(t, err)
		require.Equal(t, 1, got.Len())
		assert.Equal(t, 1950.0, got.Records[0].Year)
		assert.Equal(t, 0.1, got.Records[0].Anomaly)
	})

	t.Run("missing anomaly always fails the test", func(t *testing.T) {
		series := Series{Source: SourceObserved, Records: []TemperatureRecord{
			{Year: 1900, Anomaly: math.NaN(), Source: SourceObserved},
		}}

		got, err := Filter(series, FilterSpec{
			Visible:      AllSources(),
			AnomalyRange: &Range{Min: -10, Max: 10},
		})
		require.NoError(t, err)
		assert.True(t, got.Empty())
	})
}

func TestFilter_InvertedRangeRejected(t *testing.T) {
	series := makeSeries(SourceObserved, [2]float64{1900, 0})

	for name, spec := range map[string]FilterSpec{
		"year":    {Visible: AllSources(), YearRange: &Range{Min: 2000, Max: 1900}},
		"anomaly": {Visible: AllSources(), AnomalyRange: &Range{Min: 1, Max: -1}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Filter(series, spec)
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	series := makeSeries(SourceObserved, [2]float64{1900, 0.5}, [2]float64{1950, 0.1})
	before := series.Clone()

	_, err := Filter(series, FilterSpec{
		Visible:      AllSources(),
		AnomalyRange: &Range{Min: 0, Max: 0.2},
	})
	require.NoError(t, err)

	if diff := cmp.Diff(before, series, cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("input series mutated (-want +got):\n%s", diff)
	}
}

func TestSourceSet(t *testing.T) {
	assert.True(t, AllSources().Has(SourceObserved))
	assert.True(t, AllSources().Has(SourceReconstructed))
	assert.False(t, SourceSet{}.Has(SourceObserved))
	assert.False(t, AllSources().Has(Source("martian")))
	assert.True(t, SourceSet{}.Empty())
}
