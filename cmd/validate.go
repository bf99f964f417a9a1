package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/gaurav-prasanna/guidegen/core/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate [content.yaml]",
	Short: "Check a content table for authoring problems",
	Long: `Validate reports every problem in a content table at once: duplicate parts,
malformed page labels, chapters without content, unused content entries,
unknown mockups and empty bodies. Without an argument the configured
(or built-in) guide is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := cfg.Content
	if len(args) == 1 {
		path = args[0]
	}
	guide, err := content.Load(path)
	if err != nil {
		return err
	}

	problems := multierr.Errors(content.Validate(guide))
	for _, p := range problems {
		fmt.Fprintf(cmd.ErrOrStderr(), "  ✗ %v\n", p)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d content problems found", len(problems))
	}

	var chapters int
	for _, s := range guide.Sections {
		chapters += len(s.Chapters)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %d sections, %d chapters, %d content entries\n",
		len(guide.Sections), chapters, len(guide.Content))
	return nil
}
