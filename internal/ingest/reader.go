package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/couchcryptid/climate-timeline/internal/domain"
	"github.com/couchcryptid/climate-timeline/internal/observability"
)

// Loader reads and normalizes source files. It is stateless apart from its
// observability handles and safe for concurrent use.
type Loader struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLoader creates a Loader with the given observability.
func NewLoader(logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{logger: logger, metrics: metrics}
}

// LoadSeries opens path and reads it as the named source.
func (l *Loader) LoadSeries(src domain.Source, path string) (domain.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Series{}, ingestErrorf(src, err, "open source file")
	}
	defer f.Close()

	return l.ReadSeries(src, f)
}

// ReadSeries decodes, header-skips, parses, and normalizes one source. The
// returned series preserves row count: every data row yields exactly one
// record, with unparseable cells coerced to the missing sentinel.
func (l *Loader) ReadSeries(src domain.Source, r io.Reader) (domain.Series, error) {
	format, err := FormatFor(src)
	if err != nil {
		return domain.Series{}, ingestErrorf(src, err, "unknown source")
	}

	// The exports are latin-1; decode before any line handling so the
	// preamble's accented citation text cannot corrupt the scan.
	br := bufio.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))

	// The preamble is free text, not CSV. Skip it line by line rather than
	// through the CSV reader, which would choke on unbalanced quotes.
	for i := 0; i < format.SkipLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return domain.Series{}, ingestErrorf(src, err, "preamble truncated at line %d of %d", i+1, format.SkipLines)
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return domain.Series{}, ingestErrorf(src, err, "missing header row")
	}
	if len(header) < format.MinColumns {
		return domain.Series{}, ingestErrorf(src, nil, "header has %d columns, need at least %d", len(header), format.MinColumns)
	}

	series := domain.Series{Source: src}
	warnings := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Series{}, ingestErrorf(src, err, "malformed data row %d", series.Len()+1)
		}

		year, yearWarn := coerceNumeric(record, format.YearColumn)
		anomaly, anomalyWarn := coerceNumeric(record, format.AnomalyColumn)
		if yearWarn || anomalyWarn {
			warnings++
			l.metrics.CoercionWarnings.WithLabelValues(string(src)).Inc()
			l.logger.Warn("cell failed numeric coercion, kept as missing",
				"source", string(src),
				"row", series.Len()+1,
				"year_field", fieldAt(record, format.YearColumn),
				"anomaly_field", fieldAt(record, format.AnomalyColumn),
			)
		}
		series.Records = append(series.Records, domain.TemperatureRecord{
			Year:    year,
			Anomaly: anomaly,
			Source:  src,
		})
	}

	l.metrics.RowsRead.WithLabelValues(string(src)).Add(float64(series.Len()))
	l.logger.Info("series loaded",
		"source", string(src),
		"rows", series.Len(),
		"usable", series.UsableCount(),
		"coercion_warnings", warnings,
	)
	return series, nil
}

// coerceNumeric parses a positional cell as float64, returning the NaN
// sentinel on failure. warn is true for cells that held unparseable text or
// were absent from a short row; empty cells coerce silently.
func coerceNumeric(record []string, idx int) (v float64, warn bool) {
	if idx >= len(record) {
		return math.NaN(), true
	}
	s := strings.TrimSpace(record[idx])
	if s == "" {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), true
	}
	return v, false
}

func fieldAt(record []string, idx int) string {
	if idx >= len(record) {
		return "<absent>"
	}
	return record[idx]
}
