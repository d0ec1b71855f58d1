package domain

// TrendResult is the linear fit of anomaly against year for the observed
// series. Intercept is the anomaly the fit predicts at year zero.
type TrendResult struct {
	SlopePerYear float64
	Intercept    float64
}

// SlopePerDecade reports the slope at the scale consumers actually read
// ("degrees per decade").
func (t TrendResult) SlopePerDecade() float64 {
	return t.SlopePerYear * 10
}

// At evaluates the fitted line at the given year.
func (t TrendResult) At(year float64) float64 {
	return t.Intercept + t.SlopePerYear*year
}

// FitTrend computes an ordinary least-squares fit over the usable records of
// the given (already filtered) series. ok is false when fewer than two usable
// points remain, or when all points share one year; a slope over such input
// is undefined, and an absent trend beats a degenerate one.
func FitTrend(series Series) (result TrendResult, ok bool) {
	var n, sumX, sumY, sumXX, sumXY float64
	for _, r := range series.Records {
		if !r.Usable() {
			continue
		}
		n++
		sumX += r.Year
		sumY += r.Anomaly
		sumXX += r.Year * r.Year
		sumXY += r.Year * r.Anomaly
	}
	if n < 2 {
		return TrendResult{}, false
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return TrendResult{}, false
	}

	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n
	return TrendResult{SlopePerYear: slope, Intercept: intercept}, true
}
