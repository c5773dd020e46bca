package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qdocs/demolint/internal/logging"
	"github.com/qdocs/demolint/internal/tui"
	"github.com/qdocs/demolint/pkg/demolint"
)

var browseCmd = &cobra.Command{
	Use:   "browse <corpus_path>",
	Short: "Interactively browse validation violations",
	Long: `Validate the corpus and open an interactive browser over the
resulting violations. Violations can be filtered by kind and inspected
one at a time.

Requires an interactive terminal. In CI or with DEMOLINT_NON_INTERACTIVE=1
use 'demolint validate' instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

var browseFlags corpusFlags

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVar(&browseFlags.configPath, "config", "", "Path to the rules file (default: demolint.yaml at the corpus root)")
	browseCmd.Flags().StringVar(&browseFlags.authorsDir, "authors", "", "Author directory for author-id resolution")
	browseCmd.Flags().StringVar(&browseFlags.envFile, "env-file", "", "Env file with DEMOLINT_* settings (default: .env if present)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !tui.IsInteractive() {
		return fmt.Errorf("browse requires an interactive terminal: %w", demolint.ErrNotInteractive)
	}

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))
	snap, violations, err := validateCorpus(args[0], browseFlags, logger)
	if err != nil {
		return err
	}

	if len(violations) == 0 {
		fmt.Printf("All %d record(s) passed, nothing to browse.\n", len(snap.Records))
		return nil
	}

	title := fmt.Sprintf("%d violation(s) in %d record(s)", len(violations), len(snap.Records))
	return tui.Run(tui.NewBrowser(title, violations))
}
