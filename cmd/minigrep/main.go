package main

import (
	"errors"
	"os"

	"github.com/ravipatelctf/minigrep/internal/cmd"
	"github.com/ravipatelctf/minigrep/internal/config"
	"github.com/ravipatelctf/minigrep/internal/display"
)

func main() {
	printer := display.NewPrinter(os.Stdout, os.Stderr)
	rootCmd := cmd.NewRootCommand(printer)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, config.ErrInsufficientArguments) {
			printer.PrintError("Problem parsing arguments:", err)
		} else {
			printer.PrintError("Application error:", err)
		}
		os.Exit(1)
	}
}
