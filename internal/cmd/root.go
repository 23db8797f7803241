// Package cmd wires the minigrep CLI together.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ravipatelctf/minigrep/internal/config"
	"github.com/ravipatelctf/minigrep/internal/display"
	"github.com/ravipatelctf/minigrep/internal/fileutil"
	"github.com/ravipatelctf/minigrep/internal/search"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for minigrep.
// Matching lines go to the printer; errors are returned to the caller, which
// owns their formatting and the process exit code.
func NewRootCommand(printer *display.Printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep <query> <file>",
		Short: "Search a file for lines containing a query string",
		Long: `Minigrep prints every line of a file that contains the query string.

Matching is case-sensitive unless the IGNORE_CASE environment variable is
present (with any value, including empty), in which case both the query and
each line are lowercased before comparison. Matching lines are always printed
in their original casing, in document order.

Examples:
  minigrep duct poem.txt
  IGNORE_CASE=1 minigrep duct poem.txt
  minigrep "" poem.txt              # empty query matches every line`,
		Version: Version,
		// Silence usage and error output; the caller formats errors with the
		// documented prefixes.
		SilenceUsage:  true,
		SilenceErrors: true,
		// Argument count is validated by config.Build so that too few
		// arguments surface as a configuration error, not cobra usage text.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, printer)
		},
	}

	return cmd
}

// runSearch resolves the configuration, reads the target file once and prints
// the matching lines.
func runSearch(cmd *cobra.Command, args []string, printer *display.Printer) error {
	// Rebuild the conventional argument vector: cobra strips the program
	// name, config.Build expects it at index 0.
	argv := append([]string{cmd.Name()}, args...)

	cfg, err := config.Build(argv, config.IgnoreCaseFromEnv(os.LookupEnv))
	if err != nil {
		return err
	}

	contents, err := fileutil.ReadFileToString(cfg.FilePath)
	if err != nil {
		return err
	}

	var matches []string
	if cfg.IgnoreCase {
		matches = search.SearchCaseInsensitive(cfg.Query, contents)
	} else {
		matches = search.Search(cfg.Query, contents)
	}

	printer.PrintMatches(matches)
	return nil
}
