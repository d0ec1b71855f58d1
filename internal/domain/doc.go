// Package domain models the two IPCC SPM1 temperature-anomaly series and the
// chart-parameter pipeline built on top of them.
//
// # Data Source
//
// Both series come from the data exports behind Figure SPM.1 of the IPCC AR6
// Summary for Policymakers: an instrumental ("observed") global surface
// temperature record covering 1850-2020 at annual resolution, and a
// proxy-derived ("reconstructed") record covering years 1-2000 at much coarser,
// irregular resolution. Values are anomalies in degrees Celsius relative to the
// 1850-1900 baseline; the baseline itself is a property of the source files and
// is not modeled here.
//
// # Missing Values
//
// A field that fails numeric coercion during ingestion becomes NaN rather than
// dropping the row, so record counts and year spans stay well-defined even for
// partially corrupt files. NaN anomalies are excluded from trend fitting,
// vertical axis bounds, and range filtering (a value that cannot be parsed can
// be judged neither "hot" nor "cold"). Use [TemperatureRecord.AnomalyMissing]
// rather than comparing against NaN directly.
//
// # Pipeline
//
// The normalized series are immutable once loaded. Every user interaction runs
// the same pure pass over them:
//
//	Filter -> FitTrend / ActiveMarkers -> BuildChart
//
// [BuildChart] is the single entry point the rendering layer consumes; the
// [ChartParameters] it returns carries copies, never references into the
// source series.
//
// # Trend Fitting
//
// Trends are ordinary least-squares fits of anomaly against year, and only
// ever over the observed series: the reconstruction's sampling is too sparse
// and irregular for a meaningful short-term slope. A fit needs at least two
// usable points; below that the trend is reported as absent, not zero.
package domain
