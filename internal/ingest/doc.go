// Package ingest reads the two fixed-format IPCC SPM1 CSV exports and
// normalizes them into domain series.
//
// # File Layout
//
// Both files are latin-1 encoded and open with a free-text preamble (title,
// citation, units) that is not CSV at all, followed by a positional header
// row and the data rows:
//
//	observed      SPM1_1850-2020_obs.csv    15 preamble lines, then header
//	reconstructed SPM1_1-2000_recon.csv     19 preamble lines, then header
//
// Column 0 is the year (fractional for sub-annual reconstructed entries),
// column 1 the anomaly in degrees Celsius; the remaining columns are export
// artifacts and are discarded. The preamble line counts are tied to the
// specific file revision shipped with the AR6 figure data and are treated as
// fixed configuration; a file whose header does not carry the expected
// columns after skipping fails the load outright.
//
// # Coercion Policy
//
// A cell that fails numeric parsing becomes the NaN missing sentinel rather
// than aborting the series, so a handful of corrupt rows cannot blank the
// whole chart. No row is dropped: output length always equals the data-row
// count. Empty cells coerce silently; non-empty unparseable cells are counted
// and logged as coercion warnings. Only structural problems (truncated
// preamble, missing columns) surface as an *IngestError.
package ingest
