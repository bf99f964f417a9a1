// generate command.
// This is the main command: load content → render → write.
//
// It handles flag validation, renderer selection, and config overrides.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/guidegen/core"
	"github.com/gaurav-prasanna/guidegen/core/content"
	"github.com/gaurav-prasanna/guidegen/core/output"
	"github.com/gaurav-prasanna/guidegen/core/render"
)

// Flag variables.
var (
	flagPDF       bool
	flagMarkdown  bool
	flagJSON      bool
	flagOutputDir string
	flagFileName  string
	flagContent   string
	flagNumbering string
	flagVersion   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the user guide",
	Long: `Generate renders the user guide from the built-in (or a custom) content
table. PDF is the default output; the same content can be exported as
Markdown or as a JSON outline with page numbers.

Examples:
  guidegen generate
  guidegen generate --output_dir ./out --numbering derived
  guidegen generate --markdown --content ./guide.yaml`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Output format flags (mutually exclusive).
	generateCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF (default)")
	generateCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	generateCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the JSON outline")

	generateCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: from configuration)")
	generateCmd.Flags().StringVar(&flagFileName, "file_name", "", "Output file name; the extension follows the format")
	generateCmd.Flags().StringVar(&flagContent, "content", "", "Content YAML replacing the built-in guide")
	generateCmd.Flags().StringVar(&flagNumbering, "numbering", "", "Chapter page labels: fixed or derived")
	generateCmd.Flags().StringVar(&flagVersion, "version_label", "", "Version line printed on the cover")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if err := validateFormatFlags(); err != nil {
		return err
	}
	applyGenerateFlags()
	if err := cfg.Validate(); err != nil {
		return err
	}

	guide, err := content.Load(cfg.Content)
	if err != nil {
		return err
	}
	// Content problems are advisory; rendering falls back per chapter.
	for _, problem := range multierr.Errors(content.Validate(guide)) {
		log.Warn("Content problem", zap.Error(problem))
	}

	renderer := selectRenderer()
	data, err := renderer.Render(guide)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	writer, err := output.New(cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(output.WithExtension(cfg.Output.FileName, renderer.Extension()), data)
	if err != nil {
		return err
	}
	log.Info("Guide written", zap.String("path", path), zap.Int("bytes", len(data)))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}

// applyGenerateFlags lets command line flags override the configuration.
func applyGenerateFlags() {
	if flagOutputDir != "" {
		cfg.Output.Dir = flagOutputDir
	}
	if flagFileName != "" {
		cfg.Output.FileName = flagFileName
	}
	if flagContent != "" {
		cfg.Content = flagContent
	}
	if flagNumbering != "" {
		cfg.Numbering = flagNumbering
	}
	if flagVersion != "" {
		cfg.Brand.Version = flagVersion
	}
}

// validateFormatFlags checks that at most one output format is chosen.
func validateFormatFlags() error {
	formatCount := 0
	for _, set := range []bool{flagPDF, flagMarkdown, flagJSON} {
		if set {
			formatCount++
		}
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer() core.Renderer {
	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer(cfg.LayoutBrand())
	case flagJSON:
		return render.NewJSONRenderer(cfg.NumberingMode())
	default:
		r := render.NewPDFRenderer(cfg.LayoutBrand(), log)
		r.Numbering = cfg.NumberingMode()
		return r
	}
}
