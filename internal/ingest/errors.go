package ingest

import (
	"fmt"

	"github.com/couchcryptid/climate-timeline/internal/domain"
)

// IngestError reports a structural problem with a source file: truncated
// preamble, missing header, or fewer columns than the format requires. It is
// fatal to that source's load and is surfaced to the caller without retry —
// the files are static, so retrying cannot help.
type IngestError struct {
	Source domain.Source
	Reason string
	Err    error
}

func (e *IngestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ingest %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("ingest %s: %s", e.Source, e.Reason)
}

func (e *IngestError) Unwrap() error { return e.Err }

func ingestErrorf(src domain.Source, err error, format string, args ...any) *IngestError {
	return &IngestError{Source: src, Reason: fmt.Sprintf(format, args...), Err: err}
}
