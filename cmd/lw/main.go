// Command lw prints the YAML document of the lw instruction.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/sarchlab/instyaml/emit"
	"github.com/sarchlab/instyaml/isa"
	"github.com/tebeka/atexit"
)

// run writes the document to w and returns the process exit code.
func run(w io.Writer) int {
	if _, err := emit.WriteTo(w, isa.LW()); err != nil {
		slog.Error("Failed to print instruction", "error", err)
		return 1
	}

	return 0
}

func main() {
	atexit.Exit(run(os.Stdout))
}
