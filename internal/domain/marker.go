package domain

// PeriodMarker is a fixed historical-epoch annotation overlay. Visible is a
// display toggle held by the caller; it never affects the underlying series.
type PeriodMarker struct {
	Label      string
	Year       float64
	ColorToken string
	Visible    bool
}

// DefaultMarkerCatalog returns the built-in epoch annotations. Callers may
// supply their own catalog instead; the pipeline treats it as opaque input.
func DefaultMarkerCatalog() []PeriodMarker {
	return []PeriodMarker{
		{Label: "Roman Warm Period", Year: 150, ColorToken: "epoch-warm", Visible: true},
		{Label: "Medieval Warm Period", Year: 1000, ColorToken: "epoch-warm", Visible: true},
		{Label: "Little Ice Age", Year: 1650, ColorToken: "epoch-cold", Visible: true},
		{Label: "Industrial Revolution", Year: 1850, ColorToken: "epoch-industrial", Visible: true},
	}
}

// ActiveMarkers returns the markers to draw: those toggled visible whose year
// falls within at least one of the given spans (the year coverage of the
// currently visible series). A marker for a year no series displays is
// suppressed rather than drawn floating with no context.
func ActiveMarkers(catalog []PeriodMarker, spans []YearSpan) []PeriodMarker {
	var active []PeriodMarker
	for _, m := range catalog {
		if !m.Visible {
			continue
		}
		for _, span := range spans {
			if span.Contains(m.Year) {
				active = append(active, m)
				break
			}
		}
	}
	return active
}
