package display

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintMatches(t *testing.T) {
	t.Run("one line per match", func(t *testing.T) {
		var out, errBuf bytes.Buffer
		printer := NewPrinter(&out, &errBuf)

		printer.PrintMatches([]string{"safe, fast, productive.", "Duct tape."})

		assert.Equal(t, "safe, fast, productive.\nDuct tape.\n", out.String())
		assert.Empty(t, errBuf.String())
	})

	t.Run("no matches produces no output", func(t *testing.T) {
		var out, errBuf bytes.Buffer
		printer := NewPrinter(&out, &errBuf)

		printer.PrintMatches(nil)
		printer.PrintMatches([]string{})

		assert.Empty(t, out.String())
	})

	t.Run("lines printed verbatim", func(t *testing.T) {
		var out, errBuf bytes.Buffer
		printer := NewPrinter(&out, &errBuf)

		printer.PrintMatches([]string{"  indented  ", ""})

		assert.Equal(t, "  indented  \n\n", out.String())
	})
}

func TestPrintError(t *testing.T) {
	t.Run("prefix and message on error writer", func(t *testing.T) {
		var out, errBuf bytes.Buffer
		printer := NewPrinter(&out, &errBuf)

		printer.PrintError("Problem parsing arguments:", errors.New("not enough arguments"))

		// Buffers are not terminals, so no escape codes appear.
		assert.Equal(t, "Problem parsing arguments: not enough arguments\n", errBuf.String())
		assert.Empty(t, out.String())
	})

	t.Run("application error prefix", func(t *testing.T) {
		var out, errBuf bytes.Buffer
		printer := NewPrinter(&out, &errBuf)

		printer.PrintError("Application error:", errors.New("failed to read poem.txt"))

		assert.Equal(t, "Application error: failed to read poem.txt\n", errBuf.String())
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
	assert.False(t, isTerminal(nil))
}
