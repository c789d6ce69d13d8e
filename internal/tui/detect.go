package tui

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether a human is at the terminal.
//
// Returns false if:
//   - FSNODE_NON_INTERACTIVE=1 is set
//   - CI is set
//   - stdin or stdout is not a terminal
func IsInteractive() bool {
	if os.Getenv("FSNODE_NON_INTERACTIVE") == "1" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
