// Package verify checks that an instruction record survives the YAML emitter.
//
// The emitter copies values verbatim and never escapes them, so a record is
// only safe to emit when its values already read back as themselves. This
// package implements two complementary stages:
//
// 1. Static Lint (lint.go): checks the record against the emitter's rules
//   - STRUCT: newline inside a scalar, duplicate keys
//   - QUOTE: scalar that a YAML parser reads back as something else
//   - INDENT: block whose first line starts with whitespace
//   - CR: carriage return inside a block
//   - CHOMP: block ending in more than one newline
//
// 2. Round trip (roundtrip.go): renders the record, parses the document with
// gopkg.in/yaml.v3 and compares keys and values with the record.
//
// # Usage Example
//
//	report := verify.GenerateReport(verify.StaticSource{Rec: isa.LW()})
//	report.WriteReport(os.Stdout)
//	if !report.Passed() {
//	    log.Fatalf("verification failed")
//	}
package verify

import (
	"fmt"

	"github.com/sarchlab/instyaml/core"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueStruct    IssueType = "STRUCT"    // Value cannot be laid out (newline in scalar, duplicate key)
	IssueQuote     IssueType = "QUOTE"     // Scalar needs quoting to read back verbatim
	IssueIndent    IssueType = "INDENT"    // Block first line needs an indentation indicator
	IssueCR        IssueType = "CR"        // Carriage return inside a block
	IssueChomp     IssueType = "CHOMP"     // Trailing empty lines lost to clip chomping
	IssueRoundTrip IssueType = "ROUNDTRIP" // Parsed document differs from the record
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType              // Category
	Key     string                 // YAML key of the field ("" if not applicable)
	Line    int                    // 1-based line within the value (-1 if not applicable)
	Message string                 // Human-readable description
	Details map[string]interface{} // Additional structured data
}

func (i Issue) String() string {
	if i.Line > 0 {
		return fmt.Sprintf("[%s] %s line %d: %s", i.Type, i.Key, i.Line, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", i.Type, i.Key, i.Message)
}

// RecordSource provides the record to verify.
type RecordSource interface {
	// Describe names where the record comes from.
	Describe() string
	// Record returns the record.
	Record() (core.Record, error)
}

// StaticSource is a record held in memory.
type StaticSource struct {
	Rec core.Record
}

func (s StaticSource) Describe() string {
	return "built-in " + s.Rec.Name
}

func (s StaticSource) Record() (core.Record, error) {
	return s.Rec, nil
}

// FileSource is a riscv-unified-db instruction file.
type FileSource struct {
	Path string
}

func (s FileSource) Describe() string {
	return s.Path
}

func (s FileSource) Record() (core.Record, error) {
	return core.LoadRecordFromYAML(s.Path)
}
