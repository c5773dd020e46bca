package demolint

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Corpus validated clean
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or rules file
	ExitCorpusError  = 11 // Corpus directory missing or unreadable
	ExitViolations   = 12 // Validation found violations
)

const (
	// MetadataFileSuffix is the extension of per-demo metadata files.
	MetadataFileSuffix = ".json"

	// RulesFileName is the rules/config file looked up at the corpus root.
	RulesFileName = "demolint.yaml"

	// DefaultSEODescriptionMaxLength bounds seoDescription when the
	// rules file does not set its own limit. Long descriptions get
	// truncated by search engines around this point anyway.
	DefaultSEODescriptionMaxLength = 160

	// DefaultWatchDebounce is how long watch mode waits after the last
	// filesystem event before revalidating. Editors emit bursts of
	// writes for a single save.
	DefaultWatchDebounce = 250 * time.Millisecond
)
