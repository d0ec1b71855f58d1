package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveMarkers(t *testing.T) {
	catalog := []PeriodMarker{
		{Label: "In span", Year: 1900, Visible: true},
		{Label: "Out of span", Year: 500, Visible: true},
		{Label: "Toggled off", Year: 1950, Visible: false},
	}
	spans := []YearSpan{{Min: 1850, Max: 2020}}

	active := ActiveMarkers(catalog, spans)
	require.Len(t, active, 1)
	assert.Equal(t, "In span", active[0].Label)
}

func TestActiveMarkers_UnionOfSpans(t *testing.T) {
	catalog := []PeriodMarker{
		{Label: "Ancient", Year: 1000, Visible: true},
		{Label: "Modern", Year: 1950, Visible: true},
		{Label: "Between", Year: 1500, Visible: true},
	}
	// Disjoint spans: a marker needs to land in at least one.
	spans := []YearSpan{{Min: 1, Max: 1200}, {Min: 1850, Max: 2020}}

	active := ActiveMarkers(catalog, spans)
	require.Len(t, active, 2)
	assert.Equal(t, "Ancient", active[0].Label)
	assert.Equal(t, "Modern", active[1].Label)
}

func TestActiveMarkers_NoSpans(t *testing.T) {
	active := ActiveMarkers(DefaultMarkerCatalog(), nil)
	assert.Empty(t, active)
}

func TestDefaultMarkerCatalog_SpansTimeline(t *testing.T) {
	catalog := DefaultMarkerCatalog()
	require.NotEmpty(t, catalog)
	full := YearSpan{Min: 1, Max: 2020}
	for _, m := range catalog {
		assert.True(t, full.Contains(m.Year), "marker %q outside the timeline", m.Label)
		assert.NotEmpty(t, m.ColorToken)
	}
}
