// Package emit writes instruction records as YAML documents.
//
// Scalar fields are written as `key: value` with the value copied verbatim.
// Block fields are written as a literal block:
//
//	description: |
//	  Load 32 bits of data into register `xd` from an
//	  address formed by adding `xs1` to a signed offset.
//
// Each call builds its own output; nothing is shared between calls.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/instyaml/core"
)

// Indent is the prefix of every line inside a literal block.
const Indent = "  "

// Render returns the YAML document of a record in the default field order.
func Render(rec core.Record) string {
	return RenderLayout(rec, core.DefaultLayout())
}

// RenderLayout returns the YAML document of a record using the given layout.
func RenderLayout(rec core.Record, layout core.Layout) string {
	var sb strings.Builder
	for _, f := range layout {
		for _, line := range fieldLines(f, rec) {
			sb.WriteString(line)
		}
	}

	core.Trace("Rendered instruction", "name", rec.Name, "bytes", sb.Len())

	return sb.String()
}

// WriteTo renders a record and writes it to w.
func WriteTo(w io.Writer, rec core.Record) (int64, error) {
	n, err := io.WriteString(w, Render(rec))
	if err != nil {
		return int64(n), fmt.Errorf("failed to write %s: %w", rec.Name, err)
	}

	return int64(n), nil
}

// fieldLines returns the output lines of one field, each ending in '\n'.
func fieldLines(f core.Field, rec core.Record) []string {
	value := f.Value(rec)

	if f.Kind != core.Block {
		return []string{f.Key + ": " + value + "\n"}
	}

	split := core.SplitLines(value)
	lines := make([]string, 0, len(split)+1)
	lines = append(lines, f.Key+": |\n")
	for _, l := range split {
		lines = append(lines, Indent+l+"\n")
	}

	return lines
}
