// Package render maps ChartParameters onto go-chart primitives and encodes
// a PNG. It is a pure consumer of the core's output contract: nothing here
// reaches back into the normalized series.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/climate-timeline/internal/domain"
)

const (
	defaultWidth  = 1024
	defaultHeight = 512
)

// tokenColors resolves annotation color tokens. Tokens are a rendering
// concern, which is why the palette does not carry them.
var tokenColors = map[string]drawing.Color{
	"now":              {R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF},
	"epoch-warm":       {R: 0xE2, G: 0xA7, B: 0x6F, A: 0xFF},
	"epoch-cold":       {R: 0x7F, G: 0xB3, B: 0xD5, A: 0xFF},
	"epoch-industrial": {R: 0x88, G: 0x88, B: 0x88, A: 0xFF},
}

// PNG renders params at the given pixel size and writes PNG bytes to w.
func PNG(params domain.ChartParameters, w io.Writer, width, height int) error {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	series := assembleSeries(params)
	if len(series) == 0 {
		// go-chart refuses to render a chart with no series; an all-hidden
		// interaction still deserves an image, so emit a blank canvas.
		return blank(w, width, height, params.Palette.BackgroundColor)
	}

	grid := hexColor(params.Palette.GridColor)
	background := hexColor(params.Palette.BackgroundColor)

	ch := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{FillColor: background},
		Canvas:     chart.Style{FillColor: background},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: params.Axes.XMin, Max: params.Axes.XMax},
			GridMajorStyle: chart.Style{
				StrokeColor: grid.WithAlpha(80),
				StrokeWidth: 1,
			},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: params.Axes.YMin, Max: params.Axes.YMax},
			Ticks: guideTicks(params),
			GridMajorStyle: chart.Style{
				StrokeColor: grid.WithAlpha(80),
				StrokeWidth: 1,
			},
		},
		Series: series,
	}
	if len(params.Legend) > 0 {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// assembleSeries converts the parameter bundle into go-chart series. Helper
// series (zero line, band edges, marker rules) carry empty names so the
// legend skips them.
func assembleSeries(params domain.ChartParameters) []chart.Series {
	var out []chart.Series

	if params.Highlight != nil {
		out = append(out,
			verticalRule(params.Highlight.StartYear, params.Axes, hexColor(params.Palette.GridColor), 1),
			verticalRule(params.Highlight.EndYear, params.Axes, hexColor(params.Palette.GridColor), 1),
		)
	}

	if params.ShowZeroLine {
		out = append(out, chart.ContinuousSeries{
			XValues: []float64{params.Axes.XMin, params.Axes.XMax},
			YValues: []float64{0, 0},
			Style: chart.Style{
				StrokeColor:     chart.ColorBlack.WithAlpha(128),
				StrokeWidth:     1,
				StrokeDashArray: []float64{4, 4},
			},
		})
	}

	for _, m := range params.Markers {
		out = append(out, verticalRule(m.Year, params.Axes, tokenColor(m.ColorToken), 1))
		out = append(out, chart.AnnotationSeries{
			Annotations: []chart.Value2{{
				XValue: m.Year,
				YValue: params.Axes.YMax,
				Label:  m.Label,
			}},
			Style: chart.Style{StrokeColor: tokenColor(m.ColorToken)},
		})
	}

	out = append(out, lineSeries(params.Reconstructed, 2)...)
	out = append(out, lineSeries(params.Observed, 3)...)

	if t := params.Trend; t != nil {
		out = append(out, chart.ContinuousSeries{
			Name:    "Trend",
			XValues: []float64{t.StartYear, t.EndYear},
			YValues: []float64{t.At(t.StartYear), t.At(t.EndYear)},
			Style: chart.Style{
				StrokeColor:     hexColor(params.Palette.GridColor),
				StrokeWidth:     2,
				StrokeDashArray: []float64{6, 3},
			},
		})
	}

	if n := params.Now; n != nil {
		out = append(out, chart.AnnotationSeries{
			Annotations: []chart.Value2{{XValue: n.Year, YValue: n.Anomaly, Label: n.Label}},
			Style: chart.Style{
				StrokeColor: tokenColor(n.ColorToken),
				FillColor:   tokenColor(n.ColorToken).WithAlpha(64),
			},
		})
	}

	return out
}

// lineSeries converts one polyline, splitting at missing-value gaps since
// go-chart has no NaN-gap support. Only the first segment carries the series
// name so the legend lists it once.
func lineSeries(s domain.LineSeries, strokeWidth float64) []chart.Series {
	if s.Empty() {
		return nil
	}

	var out []chart.Series
	stroke := hexColor(s.Color)
	for _, seg := range splitAtGaps(s.Years, s.Anomalies) {
		name := ""
		if len(out) == 0 {
			name = s.Name
		}
		xs, ys := seg.xs, seg.ys
		if len(xs) == 1 {
			// go-chart needs at least two X values per series.
			xs = append(xs, xs[0]+0.5)
			ys = append(ys, ys[0])
		}
		out = append(out, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: stroke, StrokeWidth: strokeWidth},
		})
	}
	return out
}

type segment struct {
	xs []float64
	ys []float64
}

func splitAtGaps(years, anomalies []float64) []segment {
	var segs []segment
	var cur segment
	flush := func() {
		if len(cur.xs) > 0 {
			segs = append(segs, cur)
			cur = segment{}
		}
	}
	for i := range years {
		if math.IsNaN(anomalies[i]) {
			flush()
			continue
		}
		cur.xs = append(cur.xs, years[i])
		cur.ys = append(cur.ys, anomalies[i])
	}
	flush()
	return segs
}

func verticalRule(year float64, axes domain.AxisBounds, c drawing.Color, width float64) chart.Series {
	return chart.ContinuousSeries{
		XValues: []float64{year, year},
		YValues: []float64{axes.YMin, axes.YMax},
		Style: chart.Style{
			StrokeColor:     c,
			StrokeWidth:     width,
			StrokeDashArray: []float64{2, 2},
		},
	}
}

func guideTicks(params domain.ChartParameters) []chart.Tick {
	if len(params.YTicks) == 0 {
		return nil
	}
	// Anchor ticks at the range ends so go-chart draws the full axis.
	ticks := []chart.Tick{{Value: params.Axes.YMin, Label: ""}}
	for _, t := range params.YTicks {
		ticks = append(ticks, chart.Tick{Value: t.Value, Label: t.Label})
	}
	ticks = append(ticks, chart.Tick{Value: params.Axes.YMax, Label: ""})
	return ticks
}

func tokenColor(token string) drawing.Color {
	if c, ok := tokenColors[token]; ok {
		return c
	}
	return chart.ColorAlternateGray
}

func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

// blank writes a solid background image for the nothing-visible case.
func blank(w io.Writer, width, height int, backgroundHex string) error {
	bg := hexColor(backgroundHex)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fill := color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 0xFF}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode blank chart: %w", err)
	}
	return nil
}
