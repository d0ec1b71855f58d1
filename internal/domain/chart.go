package domain

import (
	"math"
	"time"
)

// Fallback axis bounds for the degenerate chart with every source hidden.
// The observed era keeps the empty frame recognizable.
var (
	fallbackDomain  = YearSpan{Min: 1850, Max: 2020}
	fallbackYBounds = Range{Min: -1, Max: 1}
)

// yGuideTicks are the simplified vertical guide labels carried into every
// chart that shows data. Ticks outside the computed bounds are dropped.
var yGuideTicks = []GuideTick{
	{Value: -1, Label: "Cooler"},
	{Value: 0, Label: "Baseline"},
	{Value: 1, Label: "Warmer"},
}

// LineSeries is one renderable polyline. Years and Anomalies are parallel;
// a NaN anomaly is a gap, not a zero.
type LineSeries struct {
	Name      string
	Color     string
	Years     []float64
	Anomalies []float64
}

// Empty reports whether the series has no points to draw.
func (s LineSeries) Empty() bool { return len(s.Years) == 0 }

// TrendLine is the fitted observed trend, drawn over [StartYear, EndYear]
// (the filtered observed domain, never the reconstruction's).
type TrendLine struct {
	TrendResult
	StartYear float64
	EndYear   float64
}

// HighlightBand shades the year interval [StartYear, EndYear].
type HighlightBand struct {
	StartYear float64
	EndYear   float64
}

// Annotation is a labeled point callout, e.g. the "Now" star on the latest
// observed sample.
type Annotation struct {
	Label      string
	Year       float64
	Anomaly    float64
	ColorToken string
}

// AxisBounds are the resolved chart axis limits.
type AxisBounds struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// GuideTick is a labeled vertical-axis tick.
type GuideTick struct {
	Value float64
	Label string
}

// LegendEntry names one element actually present on the chart.
type LegendEntry struct {
	Label string
	Color string
}

// ChartRequest carries everything one interaction supplies: the filter
// snapshot, the theme token, the marker catalog, and an optional highlight
// band.
type ChartRequest struct {
	Filter    FilterSpec
	Theme     Theme
	Markers   []PeriodMarker
	Highlight *HighlightBand
}

// ChartParameters is the full immutable output bundle for one render and the
// sole contract exposed to the rendering layer. It holds copies of everything
// it carries, so a renderer cannot reach back into the cached series.
type ChartParameters struct {
	Observed      LineSeries
	Reconstructed LineSeries
	ShowZeroLine  bool
	Highlight     *HighlightBand
	Trend         *TrendLine
	Markers       []PeriodMarker
	Now           *Annotation
	Axes          AxisBounds
	YTicks        []GuideTick
	Legend        []LegendEntry
	Palette       Palette
	GeneratedAt   time.Time
}

// BuildChart runs the per-interaction pipeline: filter both normalized
// series, derive the trend and active markers, and assemble the renderable
// bundle. Configuration problems (bad theme, inverted range) fail before any
// computation; an empty result after filtering is a valid, empty chart.
func BuildChart(observed, reconstructed Series, req ChartRequest) (ChartParameters, error) {
	if err := req.Filter.Validate(); err != nil {
		return ChartParameters{}, err
	}
	palette, err := ResolvePalette(req.Theme)
	if err != nil {
		return ChartParameters{}, err
	}
	if req.Highlight != nil && !(req.Highlight.StartYear <= req.Highlight.EndYear) {
		return ChartParameters{}, configErrorf("highlight band",
			"start %v > end %v", req.Highlight.StartYear, req.Highlight.EndYear)
	}

	fObs, err := Filter(observed, req.Filter)
	if err != nil {
		return ChartParameters{}, err
	}
	fRec, err := Filter(reconstructed, req.Filter)
	if err != nil {
		return ChartParameters{}, err
	}

	var spans []YearSpan
	obsSpan, obsHasSpan := fObs.YearSpan()
	if obsHasSpan {
		spans = append(spans, obsSpan)
	}
	recSpan, recHasSpan := fRec.YearSpan()
	if recHasSpan {
		spans = append(spans, recSpan)
	}

	params := ChartParameters{
		Observed:      toLineSeries(fObs, "Observed", palette.NewColor),
		Reconstructed: toLineSeries(fRec, "Reconstructed", palette.OldColor),
		ShowZeroLine:  len(spans) > 0,
		Markers:       ActiveMarkers(req.Markers, spans),
		Axes:          resolveAxes(spans, obsSpan, obsHasSpan, recSpan, fObs, fRec),
		Palette:       palette,
		GeneratedAt:   clock.Now(),
	}

	if req.Highlight != nil {
		band := *req.Highlight
		params.Highlight = &band
	}

	if obsHasSpan {
		if trend, ok := FitTrend(fObs); ok {
			params.Trend = &TrendLine{TrendResult: trend, StartYear: obsSpan.Min, EndYear: obsSpan.Max}
		}
		params.Now = latestObserved(fObs)
	}

	for _, tick := range yGuideTicks {
		if tick.Value >= params.Axes.YMin && tick.Value <= params.Axes.YMax {
			params.YTicks = append(params.YTicks, tick)
		}
	}

	params.Legend = buildLegend(params, palette)
	return params, nil
}

// toLineSeries copies a filtered series into renderable parallel slices.
// Records without a usable year cannot be placed on the axis and are skipped
// here; they were already counted during ingestion.
func toLineSeries(s Series, name, color string) LineSeries {
	out := LineSeries{Name: name, Color: color}
	for _, r := range s.Records {
		if r.YearMissing() {
			continue
		}
		out.Years = append(out.Years, r.Year)
		out.Anomalies = append(out.Anomalies, r.Anomaly)
	}
	return out
}

// resolveAxes applies the domain policy: lower bound is the minimum year of
// the visible series; the upper bound follows the observed series whenever it
// has data, since the instrumental record always ends the timeline. Both
// hidden (or empty) falls back to a fixed window.
func resolveAxes(spans []YearSpan, obsSpan YearSpan, obsHasSpan bool, recSpan YearSpan, fObs, fRec Series) AxisBounds {
	if len(spans) == 0 {
		return AxisBounds{
			XMin: fallbackDomain.Min, XMax: fallbackDomain.Max,
			YMin: fallbackYBounds.Min, YMax: fallbackYBounds.Max,
		}
	}

	xMin := spans[0].Min
	for _, s := range spans[1:] {
		xMin = math.Min(xMin, s.Min)
	}
	// spans is non-empty, so when the observed span is absent the
	// reconstructed one must be present.
	xMax := recSpan.Max
	if obsHasSpan {
		xMax = obsSpan.Max
	}

	yMin, yMax, ok := anomalyBounds(fObs, fRec)
	if !ok {
		yMin, yMax = fallbackYBounds.Min, fallbackYBounds.Max
	}
	return AxisBounds{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
}

// anomalyBounds computes padded vertical bounds over the usable anomalies of
// both filtered series, always keeping the zero reference line in frame.
func anomalyBounds(series ...Series) (float64, float64, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, r := range s.Records {
			if !r.Usable() {
				continue
			}
			lo = math.Min(lo, r.Anomaly)
			hi = math.Max(hi, r.Anomaly)
		}
	}
	if lo > hi {
		return 0, 0, false
	}

	lo = math.Min(lo, 0)
	hi = math.Max(hi, 0)
	pad := 0.1 * (hi - lo)
	if pad == 0 {
		pad = 0.5
	}
	return lo - pad, hi + pad, true
}

// latestObserved returns the "Now" callout at the most recent usable observed
// sample, or nil when none exists.
func latestObserved(s Series) *Annotation {
	var best *TemperatureRecord
	for i := range s.Records {
		r := &s.Records[i]
		if !r.Usable() {
			continue
		}
		if best == nil || r.Year > best.Year {
			best = r
		}
	}
	if best == nil {
		return nil
	}
	return &Annotation{Label: "Now", Year: best.Year, Anomaly: best.Anomaly, ColorToken: "now"}
}

// buildLegend emits entries only for elements actually present on the chart.
func buildLegend(p ChartParameters, palette Palette) []LegendEntry {
	var legend []LegendEntry
	if !p.Reconstructed.Empty() {
		legend = append(legend, LegendEntry{Label: "Reconstructed", Color: palette.OldColor})
	}
	if !p.Observed.Empty() {
		legend = append(legend, LegendEntry{Label: "Observed", Color: palette.NewColor})
	}
	if p.Trend != nil {
		legend = append(legend, LegendEntry{Label: "Trend", Color: palette.GridColor})
	}
	return legend
}
