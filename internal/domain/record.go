package domain

import "math"

// Source identifies which of the two input series a record came from.
type Source string

const (
	SourceObserved      Source = "observed"
	SourceReconstructed Source = "reconstructed"
)

// Valid reports whether s is one of the two known sources.
func (s Source) Valid() bool {
	return s == SourceObserved || s == SourceReconstructed
}

// TemperatureRecord is one (year, anomaly) sample of a series. Anomaly is in
// degrees Celsius relative to the source's baseline. Year may be fractional
// for sub-annual reconstructed entries. Either field is NaN when the source
// cell failed numeric coercion.
type TemperatureRecord struct {
	Year    float64
	Anomaly float64
	Source  Source
}

// AnomalyMissing reports whether the anomaly failed coercion during ingestion.
func (r TemperatureRecord) AnomalyMissing() bool {
	return math.IsNaN(r.Anomaly)
}

// YearMissing reports whether the year failed coercion during ingestion.
// Records with a missing year never participate in spans or axis bounds.
func (r TemperatureRecord) YearMissing() bool {
	return math.IsNaN(r.Year)
}

// Usable reports whether the record can contribute to aggregate statistics,
// i.e. both year and anomaly parsed.
func (r TemperatureRecord) Usable() bool {
	return !r.YearMissing() && !r.AnomalyMissing()
}

// Series is an ordered, immutable sequence of records for one source.
// Records are in file order, which the source formats guarantee to be
// non-decreasing by year.
type Series struct {
	Source  Source
	Records []TemperatureRecord
}

// Len returns the number of records, missing-value rows included.
func (s Series) Len() int { return len(s.Records) }

// Empty reports whether the series has no records at all.
func (s Series) Empty() bool { return len(s.Records) == 0 }

// UsableCount returns the number of records with both fields parsed.
func (s Series) UsableCount() int {
	n := 0
	for _, r := range s.Records {
		if r.Usable() {
			n++
		}
	}
	return n
}

// YearSpan returns the min/max year over records with a parsed year.
// ok is false when no record has a usable year.
func (s Series) YearSpan() (span YearSpan, ok bool) {
	for _, r := range s.Records {
		if r.YearMissing() {
			continue
		}
		if !ok {
			span = YearSpan{Min: r.Year, Max: r.Year}
			ok = true
			continue
		}
		span.Min = math.Min(span.Min, r.Year)
		span.Max = math.Max(span.Max, r.Year)
	}
	return span, ok
}

// Clone returns a deep copy so callers can hand series across API boundaries
// without aliasing the cached originals.
func (s Series) Clone() Series {
	out := Series{Source: s.Source}
	if len(s.Records) > 0 {
		out.Records = make([]TemperatureRecord, len(s.Records))
		copy(out.Records, s.Records)
	}
	return out
}

// YearSpan is an inclusive [Min, Max] range of years.
type YearSpan struct {
	Min float64
	Max float64
}

// Contains reports whether year falls inside the span, bounds included.
// Always false for NaN.
func (s YearSpan) Contains(year float64) bool {
	return year >= s.Min && year <= s.Max
}
