// Command gendata synthesizes SPM1-format fixture files for tests and demos.
// It writes both sources through the same format constants the ingest package
// reads with, so fixtures stay in lockstep with the reader.
//
// Usage:
//
//	go run ./cmd/gendata -out-dir data -seed 1 -corrupt 3
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/climate-timeline/internal/domain"
	"github.com/couchcryptid/climate-timeline/internal/ingest"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out-dir", "data", "directory to write fixture files into")
	seed := flag.Int64("seed", 1, "random seed, fixed for reproducible fixtures")
	corrupt := flag.Int("corrupt", 0, "number of anomaly cells to corrupt per file, for coercion testing")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	rng := rand.New(rand.NewSource(*seed))

	if err := writeObserved(*outDir, rng, *corrupt); err != nil {
		return err
	}
	if err := writeReconstructed(*outDir, rng, *corrupt); err != nil {
		return err
	}
	return nil
}

// writeObserved emits an annual 1850-2020 series with a flat early record and
// accelerating warming after 1950, roughly the shape of the real export.
func writeObserved(dir string, rng *rand.Rand, corrupt int) error {
	format, err := ingest.FormatFor(domain.SourceObserved)
	if err != nil {
		return err
	}

	var b strings.Builder
	writePreamble(&b, format.SkipLines, "Observed global surface temperature 1850-2020 (synthetic fixture)")
	b.WriteString("1,2,Unnamed: 2,Unnamed: 3,Unnamed: 4\n")

	corruptRows := pickRows(rng, 1850, 2020, corrupt)
	for year := 1850; year <= 2020; year++ {
		anomaly := -0.2 + 0.02*rng.NormFloat64()
		if year > 1950 {
			frac := float64(year-1950) / 70.0
			anomaly += 1.2 * frac * frac
		}
		cell := fmt.Sprintf("%.3f", anomaly)
		if corruptRows[year] {
			cell = "n/a"
		}
		fmt.Fprintf(&b, "%d,%s,,,\n", year, cell)
	}

	return writeFile(dir, format.DefaultFilename, b.String())
}

// writeReconstructed emits a coarse year 1-2000 series: a slow wobble around
// the baseline with a shallow dip toward the Little Ice Age.
func writeReconstructed(dir string, rng *rand.Rand, corrupt int) error {
	format, err := ingest.FormatFor(domain.SourceReconstructed)
	if err != nil {
		return err
	}

	var b strings.Builder
	writePreamble(&b, format.SkipLines, "Reconstructed global surface temperature 1-2000 (synthetic fixture)")
	b.WriteString("1,2,3,4,Unnamed: 4\n")

	corruptRows := pickRows(rng, 1, 2000, corrupt)
	for year := 1; year <= 2000; year += 10 {
		anomaly := -0.15 +
			0.1*math.Sin(float64(year)/300.0) -
			0.2*math.Exp(-math.Pow(float64(year-1650)/200.0, 2)) +
			0.01*rng.NormFloat64()
		cell := fmt.Sprintf("%.3f", anomaly)
		if corruptRows[year] {
			cell = "n/a"
		}
		fmt.Fprintf(&b, "%d,%s,%.3f,%.3f,\n", year, cell, anomaly-0.05, anomaly+0.05)
	}

	return writeFile(dir, format.DefaultFilename, b.String())
}

// writePreamble fills the free-text lines the reader skips. The last line is
// left blank like the real exports.
func writePreamble(b *strings.Builder, lines int, title string) {
	fmt.Fprintf(b, "%s\n", title)
	b.WriteString("Anomalies in degrees Celsius relative to 1850-1900\n")
	for i := 2; i < lines; i++ {
		fmt.Fprintf(b, "# preamble line %d\n", i+1)
	}
}

func pickRows(rng *rand.Rand, minYear, maxYear, n int) map[int]bool {
	rows := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		rows[minYear+rng.Intn(maxYear-minYear+1)] = true
	}
	return rows
}

func writeFile(dir, name, content string) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Printf("wrote %s (%d bytes)", path, len(content))
	return nil
}
