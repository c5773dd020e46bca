package demolint

// Logger carries diagnostics out of the validation pipeline without
// binding it to a concrete sink. Reports go to stdout; loggers must
// not, so JSON output stays parseable when piped. Implementations must
// be safe for concurrent use.
type Logger interface {
	// Verbose logs detail that only matters when debugging a run.
	// Silent unless verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs progress messages.
	Info(format string, args ...interface{})

	// Error logs failures.
	Error(format string, args ...interface{})
}
