package ingest

import (
	"fmt"

	"github.com/couchcryptid/climate-timeline/internal/domain"
)

// SourceFormat pins down the fixed layout of one source file. The constants
// follow the shipped revision of the SPM1 figure-data exports; see the
// package documentation.
type SourceFormat struct {
	// DefaultFilename is the name the export ships under, used by the
	// commands when no explicit path is configured.
	DefaultFilename string
	// SkipLines is the number of free-text preamble lines before the header.
	SkipLines int
	// YearColumn and AnomalyColumn are positional indices into a data row.
	YearColumn    int
	AnomalyColumn int
	// MinColumns is the structural requirement on the header row; a header
	// with fewer columns means a truncated or malformed file.
	MinColumns int
}

var formats = map[domain.Source]SourceFormat{
	domain.SourceObserved: {
		DefaultFilename: "SPM1_1850-2020_obs.csv",
		SkipLines:       15,
		YearColumn:      0,
		AnomalyColumn:   1,
		MinColumns:      2,
	},
	domain.SourceReconstructed: {
		DefaultFilename: "SPM1_1-2000_recon.csv",
		SkipLines:       19,
		YearColumn:      0,
		AnomalyColumn:   1,
		MinColumns:      2,
	},
}

// FormatFor returns the fixed layout for a source.
func FormatFor(src domain.Source) (SourceFormat, error) {
	f, ok := formats[src]
	if !ok {
		return SourceFormat{}, fmt.Errorf("no format registered for source %q", string(src))
	}
	return f, nil
}
