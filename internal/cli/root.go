package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `     _                     _ _       _
  __| | ___ _ __ ___   ___ | (_)_ __ | |_
 / _` + "`" + ` |/ _ \ '_ ` + "`" + ` _ \ / _ \| | | '_ \| __|
| (_| |  __/ | | | | | (_) | | | | | | |_
 \__,_|\___|_| |_| |_|\___/|_|_|_| |_|\__|`

var rootCmd = &cobra.Command{
	Use:   "demolint",
	Short: "Corpus linter for demo metadata",
	Long: asciiLogo + `

demolint validates the per-demo JSON metadata records that drive the
tutorials website: required fields, types, date ordering, controlled
vocabularies, and cross-record referential integrity (canonical URLs,
related-content links, author ids). Every violation in the corpus is
reported in one pass, in a deterministic order, so authors fix
everything before the next docs build.

The exit status is the CI gate: the docs build and the publish step run
only when validation exits zero.

Exit Codes:
  0  - Corpus validated clean
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or rules file
  11 - Corpus directory missing or unreadable
  12 - Validation found violations`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for demolint")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
