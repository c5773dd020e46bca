package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qdocs/demolint/internal/logging"
	"github.com/qdocs/demolint/internal/scaffold"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold <corpus_path> <slug>",
	Short: "Generate a starter metadata record for a new demo",
	Long: `Generate a metadata record for a new demo that already passes
validation against the default rules. By default the record is printed
to stdout; pass --write to create <corpus_path>/<slug>.json.

Examples:
  # Preview the record
  demolint scaffold ./demonstrations tutorial_qubit_rotation

  # Write it into the corpus with an explicit title and author
  demolint scaffold ./demonstrations tutorial_qubit_rotation \
    --title "Basic tutorial: qubit rotation" --author josh_izaac --write`,
	Args: cobra.ExactArgs(2),
	RunE: runScaffold,
}

var (
	scaffoldTitle  string
	scaffoldAuthor string
	scaffoldWrite  bool
)

func init() {
	rootCmd.AddCommand(scaffoldCmd)

	scaffoldCmd.Flags().StringVar(&scaffoldTitle, "title", "", "Demo title (default: derived from the slug)")
	scaffoldCmd.Flags().StringVar(&scaffoldAuthor, "author", "", "Author id for the first author entry")
	scaffoldCmd.Flags().BoolVar(&scaffoldWrite, "write", false, "Write the record into the corpus instead of printing it")
}

func runScaffold(cmd *cobra.Command, args []string) error {
	corpusPath, slug := args[0], args[1]
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	rec := scaffold.Record{
		Slug:     slug,
		Title:    scaffoldTitle,
		AuthorID: scaffoldAuthor,
	}

	if !scaffoldWrite {
		content, err := scaffold.Render(rec)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(content)
		return err
	}

	targetPath, err := scaffold.Create(corpusPath, rec)
	if err != nil {
		return err
	}
	logger.Verbose("wrote %s", targetPath)
	fmt.Printf("Created %s\n", targetPath)
	return nil
}
