package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/instyaml/core"
	"github.com/sarchlab/instyaml/emit"
)

// VerificationReport represents a complete verification report
type VerificationReport struct {
	Source          string
	Record          core.Record
	Layout          core.Layout
	SourceErr       error
	LintIssues      []Issue
	RoundTripIssues []Issue
	RoundTripErr    error
	OutputBytes     int
	ReferenceErr    error // truncation under the C formatter's buffer sizes
}

// GenerateReport runs lint and the round trip on the record of src.
func GenerateReport(src RecordSource) *VerificationReport {
	report := &VerificationReport{
		Source: src.Describe(),
		Layout: core.DefaultLayout(),
	}

	rec, err := src.Record()
	if err != nil {
		report.SourceErr = err
		return report
	}
	report.Record = rec
	core.LogRecord(rec)

	report.LintIssues = RunLint(rec, report.Layout)
	report.RoundTripIssues, report.RoundTripErr = CheckRoundTrip(rec, report.Layout)
	report.OutputBytes = len(emit.Render(rec))
	_, report.ReferenceErr = emit.RenderBounded(rec, emit.ReferenceLimits)

	return report
}

// Passed reports whether the record can be emitted without loss.
func (r *VerificationReport) Passed() bool {
	return r.SourceErr == nil &&
		r.RoundTripErr == nil &&
		len(r.LintIssues) == 0 &&
		len(r.RoundTripIssues) == 0
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "INSTRUCTION YAML VERIFICATION REPORT")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Source: %s\n", r.Source)

	if r.SourceErr != nil {
		fmt.Fprintf(w, "\n⚠ Failed to load record: %v\n\n", r.SourceErr)
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, core.RecordTable(r.Record, r.Layout))

	// STAGE 1: LINT
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: STATIC LINT CHECKS")
	fmt.Fprintln(w, separator)
	writeIssues(w, r.LintIssues, "✓ No lint issues found!")

	// STAGE 2: ROUND TRIP
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: YAML ROUND TRIP")
	fmt.Fprintln(w, separator)
	if r.RoundTripErr != nil {
		fmt.Fprintf(w, "⚠ Round trip error: %v\n", r.RoundTripErr)
	} else {
		writeIssues(w, r.RoundTripIssues, "✓ Document reads back as the record")
	}

	// STAGE 3: SUMMARY
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "VERIFICATION SUMMARY")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Output size: %d bytes\n", r.OutputBytes)
	if r.ReferenceErr != nil {
		fmt.Fprintf(w, "Reference buffers: %v\n", r.ReferenceErr)
	} else {
		fmt.Fprintln(w, "Reference buffers: fits")
	}
	fmt.Fprintf(w, "Lint Result: %d issues detected\n", len(r.LintIssues))
	fmt.Fprintf(w, "Round Trip Result: %d issues detected\n", len(r.RoundTripIssues))

	if r.Passed() {
		fmt.Fprintln(w, "✓ RECORD PASSED ALL CHECKS")
	} else {
		fmt.Fprintln(w, "⚠ RECORD FAILED VERIFICATION")
	}

	fmt.Fprintln(w)
}

func writeIssues(w io.Writer, issues []Issue, okMsg string) {
	if len(issues) == 0 {
		fmt.Fprintln(w, okMsg)
		return
	}

	fmt.Fprintf(w, "⚠ Found %d issues:\n\n", len(issues))

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Type", "Key", "Line", "Message"})
	for _, issue := range issues {
		line := ""
		if issue.Line > 0 {
			line = fmt.Sprint(issue.Line)
		}
		t.AppendRow(table.Row{issue.Type, issue.Key, line, issue.Message})
	}
	fmt.Fprintln(w, t.Render())

	for _, issue := range issues {
		if diff, ok := issue.Details["diff"]; ok {
			fmt.Fprintf(w, "\n%s diff:\n%v", issue.Key, diff)
		}
	}
}

// SaveReportToFile saves the report to a file
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
