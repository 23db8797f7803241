// Package display renders minigrep output and diagnostics to the console.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Printer writes matching lines to an output writer and diagnostics to an
// error writer. Matching lines are printed exactly as they appear in the
// document, one per line, with no decoration. Diagnostic prefixes are colored
// red when the error writer is a terminal; the message text is identical
// either way, so redirected output stays stable.
type Printer struct {
	out    io.Writer
	err    io.Writer
	prefix *color.Color
}

// NewPrinter creates a Printer for the given writers. Color is enabled only
// when err is a TTY; fatih/color additionally honors NO_COLOR on its own.
func NewPrinter(out, err io.Writer) *Printer {
	prefix := color.New(color.FgRed)
	if !isTerminal(err) {
		prefix.DisableColor()
	}

	return &Printer{
		out:    out,
		err:    err,
		prefix: prefix,
	}
}

// PrintMatches writes each matching line on its own line, in the order given.
// No count, no highlighting, no trailing summary.
func (p *Printer) PrintMatches(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(p.out, line)
	}
}

// PrintError writes a diagnostic to the error writer as "<prefix> <err>".
// Only the prefix is colored.
func (p *Printer) PrintError(prefix string, err error) {
	fmt.Fprintf(p.err, "%s %v\n", p.prefix.Sprint(prefix), err)
}

// isTerminal reports whether w is backed by a TTY (including Cygwin/MSYS2
// pseudo terminals). Plain buffers and pipes are never terminals.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
