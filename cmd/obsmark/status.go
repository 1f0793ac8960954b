package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

const statusLabelWidth = 12

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	base := fmt.Sprintf("%-*s %s", statusLabelWidth, label+":", message)
	if colorize {
		switch kind {
		case statusOK:
			return ansiGreen + base + ansiReset
		case statusWarn:
			return ansiYellow + base + ansiReset
		}
	}
	return base
}

// shouldColorize enables ANSI colors only for interactive stdout; test
// harnesses swap the command's writer, which disables coloring.
func shouldColorize(cmd *cobra.Command) bool {
	if cmd.OutOrStdout() != os.Stdout {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
