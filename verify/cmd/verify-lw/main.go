package main

import (
	"log"
	"os"

	"github.com/sarchlab/instyaml/isa"
	"github.com/sarchlab/instyaml/verify"
	"github.com/tebeka/atexit"
)

// main runs lint and the YAML round trip on the lw record, or on the
// riscv-unified-db file named by INSTYAML_SOURCE_YAML.
func main() {
	var src verify.RecordSource = verify.StaticSource{Rec: isa.LW()}
	if path := os.Getenv("INSTYAML_SOURCE_YAML"); path != "" {
		src = verify.FileSource{Path: path}
	}

	report := verify.GenerateReport(src)
	report.WriteReport(os.Stdout)

	if report.SourceErr != nil {
		log.Fatalf("Failed to load %s: %v", report.Source, report.SourceErr)
	}
	if report.RoundTripErr != nil {
		log.Fatalf("Round trip failed: %v", report.RoundTripErr)
	}
	if !report.Passed() {
		log.Fatalf("Verification failed with %d lint issues and %d round trip issues",
			len(report.LintIssues), len(report.RoundTripIssues))
	}

	atexit.Exit(0)
}
