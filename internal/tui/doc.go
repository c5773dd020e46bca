// Package tui provides terminal UI components for demolint.
//
// DetectMode decides between interactive and non-interactive behavior
// (CI pipelines, piped output, NO_COLOR). Browser is a bubbletea model
// for walking a validation report interactively; it is only offered
// when DetectMode reports an interactive terminal.
package tui
