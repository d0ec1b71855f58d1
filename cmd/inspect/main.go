// Command inspect performs data-integrity checks over the two SPM1 source
// files: structural load, row and usable counts, year ordering, and span
// consistency between the sources. It prints a phase-by-phase report and
// exits non-zero when any phase fails.
//
// Usage:
//
//	go run ./cmd/inspect -obs data/SPM1_1850-2020_obs.csv -recon data/SPM1_1-2000_recon.csv
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/couchcryptid/climate-timeline/internal/config"
	"github.com/couchcryptid/climate-timeline/internal/domain"
	"github.com/couchcryptid/climate-timeline/internal/ingest"
	"github.com/couchcryptid/climate-timeline/internal/observability"
)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	obsPath := flag.String("obs", cfg.ObservedPath, "path to the observed series CSV")
	reconPath := flag.String("recon", cfg.ReconstructedPath, "path to the reconstructed series CSV")
	flag.Parse()

	os.Exit(run(cfg, *obsPath, *reconPath))
}

func run(cfg *config.Config, obsPath, reconPath string) int {
	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	loader := ingest.NewLoader(logger, observability.NewMetrics())

	var phases []*phase

	load := &phase{name: "structural load"}
	observed, err := loader.LoadSeries(domain.SourceObserved, obsPath)
	if err != nil {
		load.errorf("observed: %v", err)
	}
	reconstructed, err := loader.LoadSeries(domain.SourceReconstructed, reconPath)
	if err != nil {
		load.errorf("reconstructed: %v", err)
	}
	phases = append(phases, load)

	if load.passed() {
		phases = append(phases,
			checkShape(observed),
			checkShape(reconstructed),
			checkOrdering(observed),
			checkOrdering(reconstructed),
			checkSpans(observed, reconstructed),
		)
	}

	failed := 0
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = "FAIL"
			failed++
		}
		fmt.Printf("[%s] %s\n", status, p.name)
		for _, e := range p.errors {
			fmt.Printf("       %s\n", e)
		}
	}
	if failed > 0 {
		fmt.Printf("%d of %d phases failed\n", failed, len(phases))
		return 1
	}
	fmt.Printf("all %d phases passed\n", len(phases))
	return 0
}

func checkShape(s domain.Series) *phase {
	p := &phase{name: fmt.Sprintf("%s shape", s.Source)}
	if s.Empty() {
		p.errorf("no data rows")
		return p
	}
	usable := s.UsableCount()
	if usable == 0 {
		p.errorf("%d rows but none usable", s.Len())
	} else if frac := float64(usable) / float64(s.Len()); frac < 0.9 {
		p.errorf("only %.0f%% of %d rows usable", frac*100, s.Len())
	}
	return p
}

func checkOrdering(s domain.Series) *phase {
	p := &phase{name: fmt.Sprintf("%s year ordering", s.Source)}
	last := -1.0
	haveLast := false
	for i, r := range s.Records {
		if r.YearMissing() {
			continue
		}
		if haveLast && r.Year < last {
			p.errorf("row %d: year %g after %g", i+1, r.Year, last)
		}
		last, haveLast = r.Year, true
	}
	return p
}

func checkSpans(observed, reconstructed domain.Series) *phase {
	p := &phase{name: "span consistency"}
	obsSpan, ok := observed.YearSpan()
	if !ok {
		p.errorf("observed has no usable years")
		return p
	}
	recSpan, ok := reconstructed.YearSpan()
	if !ok {
		p.errorf("reconstructed has no usable years")
		return p
	}
	if recSpan.Min >= obsSpan.Min {
		p.errorf("reconstruction starts at %g, expected before observed start %g", recSpan.Min, obsSpan.Min)
	}
	if obsSpan.Max < recSpan.Max {
		p.errorf("timeline ends at reconstructed %g, expected observed %g to be latest", recSpan.Max, obsSpan.Max)
	}
	return p
}
