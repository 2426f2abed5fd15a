package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/amrtaher/portfolio/internal/content"
)

var checkContent string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint the content document",
	Long:  `Loads the content document (the embedded one unless --content is given) and reports suspicious entries. Exits non-zero when there is anything to report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := lintContent(cmd.OutOrStdout(), checkContent)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%d content warning(s)", n)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkContent, "content", "", "content YAML file (default: embedded)")
	rootCmd.AddCommand(checkCmd)
}

// lintContent writes one line per warning for the document at path and
// returns how many there were.
func lintContent(w io.Writer, path string) (int, error) {
	store, err := content.Open(path)
	if err != nil {
		return 0, fmt.Errorf("loading content: %w", err)
	}
	warnings := store.Lint()
	for _, warn := range warnings {
		fmt.Fprintln(w, warn)
	}
	if len(warnings) == 0 {
		fmt.Fprintln(w, "content OK")
	}
	return len(warnings), nil
}
