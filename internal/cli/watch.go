package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/qdocs/demolint/internal/logging"
	"github.com/qdocs/demolint/internal/report"
	"github.com/qdocs/demolint/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <corpus_path>",
	Short: "Revalidate the corpus whenever metadata files change",
	Long: `Watch the corpus directory and rerun validation whenever a
metadata file is created, modified or removed. Filesystem events are
debounced so a burst of saves triggers a single run.

Intended for local authoring; press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var (
	watchFlags    corpusFlags
	watchDebounce time.Duration
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchFlags.configPath, "config", "", "Path to the rules file (default: demolint.yaml at the corpus root)")
	watchCmd.Flags().StringVar(&watchFlags.authorsDir, "authors", "", "Author directory for author-id resolution")
	watchCmd.Flags().StringVar(&watchFlags.envFile, "env-file", "", "Env file with DEMOLINT_* settings (default: .env if present)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "Delay between the last file event and revalidation")
}

func runWatch(cmd *cobra.Command, args []string) error {
	corpusPath := args[0]
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Only re-report when the corpus content actually changed. Editors
	// touch files without changing bytes more often than you would think.
	var lastChecksum string
	revalidate := func() error {
		snap, violations, err := validateCorpus(corpusPath, watchFlags, logger)
		if err != nil {
			return err
		}
		if snap.Checksum == lastChecksum {
			logger.Verbose("corpus unchanged (checksum %s), skipping report", snap.Checksum)
			return nil
		}
		lastChecksum = snap.Checksum

		fmt.Printf("\n[%s] validation run\n", time.Now().Format(time.TimeOnly))
		report.WriteText(os.Stdout, snap, violations)
		return nil
	}

	logger.Info("watching %s for changes (Ctrl+C to stop)", corpusPath)
	return watch.Run(ctx, corpusPath, watch.Options{Debounce: watchDebounce, Logger: logger}, revalidate)
}
