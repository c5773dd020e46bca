package demolint

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := runValidate(path)
//	if errors.Is(err, demolint.ErrViolationsFound) {
//	    // Corpus is not publishable; violations were printed.
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCorpusUnreadable indicates the corpus directory could not be
	// enumerated at all. This is the validator's only fatal condition;
	// everything below it becomes a Violation instead.
	ErrCorpusUnreadable = errors.New("corpus not readable")

	// ErrViolationsFound indicates validation completed and found a
	// non-empty violation list. Used to gate CI builds.
	ErrViolationsFound = errors.New("violations found")

	// ErrNotInteractive indicates a terminal-only command was invoked
	// without a terminal attached.
	ErrNotInteractive = errors.New("not an interactive terminal")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known
// errors, and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrCorpusUnreadable):
		return ExitCorpusError
	case errors.Is(err, ErrViolationsFound):
		return ExitViolations
	case errors.Is(err, ErrNotInteractive):
		return ExitUsageError
	}

	// Cobra reports flag and argument misuse as plain errors.
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "accepts") && strings.Contains(errStr, "arg(s)") {
		return ExitUsageError
	}

	return ExitGeneralError
}
