package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode says whether a human is at the terminal.
type Mode int

const (
	// ModeNonInteractive covers CI pipelines, scripts and piped output.
	ModeNonInteractive Mode = iota
	// ModeInteractive means the browser TUI can take over the screen.
	ModeInteractive
)

// DetectMode decides whether interactive commands may run.
//
// Non-interactive wins whenever any of these hold:
//   - DEMOLINT_NON_INTERACTIVE=1
//   - CI is set (the common CI convention)
//   - NO_COLOR is set
//   - stdin or stdout is not a terminal
//
// The environment overrides come first so a pipeline recipe can force
// the decision without faking TTYs.
func DetectMode() Mode {
	if os.Getenv("DEMOLINT_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" || os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive reports whether DetectMode allows a TUI.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
