package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qdocs/demolint/internal/checksum"
	"github.com/qdocs/demolint/internal/corpus"
	"github.com/qdocs/demolint/internal/logging"
	"github.com/qdocs/demolint/internal/report"
	"github.com/qdocs/demolint/internal/validator"
	"github.com/qdocs/demolint/pkg/demolint"
)

var validateCmd = &cobra.Command{
	Use:   "validate <corpus_path>",
	Short: "Validate all demo metadata records in a corpus",
	Long: `Validate every per-demo metadata record under the corpus directory.

This command checks:
1. Single-record shape (required fields, types, date ordering, vocabularies)
2. Cross-record integrity (canonical URLs, related-content links)
3. Author-id resolution, when an author directory is configured

All violations across the whole corpus are reported in one deterministic
pass; nothing stops at the first error. A non-empty report exits with
code 12 so CI can gate the docs build on it.

Examples:
  # Validate with the demolint.yaml rules at the corpus root
  demolint validate ./demonstrations

  # Validate with JSON output for CI tooling
  demolint validate ./demonstrations --json

  # Resolve author ids against a directory of author records
  demolint validate ./demonstrations --authors ./authors`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var (
	validateJSON  bool
	validateFlags corpusFlags
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output validation results as JSON")
	validateCmd.Flags().StringVar(&validateFlags.configPath, "config", "", "Path to the rules file (default: demolint.yaml at the corpus root)")
	validateCmd.Flags().StringVar(&validateFlags.authorsDir, "authors", "", "Author directory for author-id resolution")
	validateCmd.Flags().StringVar(&validateFlags.envFile, "env-file", "", "Env file with DEMOLINT_* settings (default: .env if present)")
}

// runValidate validates the corpus and renders the report.
func runValidate(cmd *cobra.Command, args []string) error {
	corpusPath := args[0]
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	snap, violations, err := validateCorpus(corpusPath, validateFlags, logger)
	if err != nil {
		return err
	}

	if validateJSON {
		if err := report.WriteJSON(os.Stdout, report.Build(snap, violations)); err != nil {
			return err
		}
	} else {
		report.WriteText(os.Stdout, snap, violations)
	}

	if len(violations) > 0 {
		return fmt.Errorf("%d violation(s) in %s: %w", len(violations), corpusPath, demolint.ErrViolationsFound)
	}
	return nil
}

// validateCorpus runs the full load-and-validate pipeline shared by the
// validate, browse and watch commands.
func validateCorpus(corpusPath string, flags corpusFlags, logger demolint.Logger) (demolint.Snapshot, []demolint.Violation, error) {
	rules, exclude, err := resolveRules(corpusPath, flags, logger)
	if err != nil {
		return demolint.Snapshot{}, nil, err
	}

	logger.Verbose("scanning corpus at %s", corpusPath)
	scanner := corpus.NewScanner(checksum.New())
	snap, err := scanner.ScanDirectory(corpusPath, exclude...)
	if err != nil {
		return demolint.Snapshot{}, nil, err
	}
	logger.Verbose("loaded %d record(s), corpus checksum %s", len(snap.Records), snap.Checksum)

	return snap, validator.Corpus(snap, rules), nil
}
