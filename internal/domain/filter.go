package domain

import "math"

// Range is an inclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v falls inside the range, bounds included.
// NaN never passes.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) inverted() bool {
	// NaN bounds are also rejected here: a predicate that can never be
	// evaluated is a caller mistake, not an empty filter.
	return !(r.Min <= r.Max) || math.IsNaN(r.Min) || math.IsNaN(r.Max)
}

// SourceSet selects which of the two sources contribute to a chart.
// The zero value hides both.
type SourceSet struct {
	Observed      bool
	Reconstructed bool
}

// Has reports whether src is selected.
func (s SourceSet) Has(src Source) bool {
	switch src {
	case SourceObserved:
		return s.Observed
	case SourceReconstructed:
		return s.Reconstructed
	default:
		return false
	}
}

// Empty reports whether no source is selected.
func (s SourceSet) Empty() bool { return !s.Observed && !s.Reconstructed }

// AllSources selects both series, the unrestricted default.
func AllSources() SourceSet {
	return SourceSet{Observed: true, Reconstructed: true}
}

// FilterSpec is the explicit value object replacing ad-hoc UI widget state:
// the caller snapshots its controls into a FilterSpec per interaction and the
// core retains nothing between calls.
type FilterSpec struct {
	YearRange    *Range // nil means unrestricted
	AnomalyRange *Range // nil means unrestricted
	Visible      SourceSet
}

// Validate rejects malformed ranges before any computation.
func (s FilterSpec) Validate() error {
	if s.YearRange != nil && s.YearRange.inverted() {
		return configErrorf("year range", "min %v > max %v", s.YearRange.Min, s.YearRange.Max)
	}
	if s.AnomalyRange != nil && s.AnomalyRange.inverted() {
		return configErrorf("anomaly range", "min %v > max %v", s.AnomalyRange.Min, s.AnomalyRange.Max)
	}
	return nil
}

// Filter applies spec to one series and returns a fresh filtered copy.
// A source absent from spec.Visible yields an empty series, never an error.
// Missing anomalies always fail an anomaly-range test. The input is never
// mutated.
func Filter(series Series, spec FilterSpec) (Series, error) {
	if err := spec.Validate(); err != nil {
		return Series{}, err
	}

	out := Series{Source: series.Source}
	if !spec.Visible.Has(series.Source) {
		return out, nil
	}

	for _, r := range series.Records {
		if spec.YearRange != nil && !spec.YearRange.Contains(r.Year) {
			continue
		}
		if spec.AnomalyRange != nil && !spec.AnomalyRange.Contains(r.Anomaly) {
			continue
		}
		out.Records = append(out.Records, r)
	}
	return out, nil
}
