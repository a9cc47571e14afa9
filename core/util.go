package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	LevelTrace slog.Level = slog.LevelDebug - 4
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// SplitLines breaks a block value into the lines written under its header.
// Only '\n' separates lines. A single terminal newline ends the last line
// instead of opening an empty one; interior empty lines are kept.
func SplitLines(value string) []string {
	if value == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(value, "\n"), "\n")
}

// RecordTable renders the fields of a record as a table of key, kind, line
// count and byte size.
func RecordTable(rec Record, layout Layout) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Instruction %s", rec.Name))
	t.AppendHeader(table.Row{"#", "Key", "Kind", "Lines", "Bytes"})

	total := 0
	for i, f := range layout {
		v := f.Value(rec)
		lines := 1
		if f.Kind == Block {
			lines = len(SplitLines(v))
		}
		total += len(v)
		t.AppendRow(table.Row{i + 1, f.Key, f.Kind, lines, len(v)})
	}

	t.AppendFooter(table.Row{"", "", "", "Total", total})

	return t.Render()
}

func LogRecord(rec Record) {
	slog.Debug("Record",
		"Name", rec.Name,
		"LongName", rec.LongName,
		"DefinedBy", rec.DefinedBy,
		"Assembly", rec.Assembly,
		"Encoding", rec.Encoding,
		"Access", rec.Access,
	)
}
