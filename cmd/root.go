// Package cmd implements the CLI commands for guidegen using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/guidegen/config"
)

// Global flag variables.
var (
	flagConfig   string
	flagLogLevel string
)

// Shared state prepared before any subcommand runs.
var (
	cfg *config.Config
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "guidegen",
	Short: "guidegen: build the Embed Pro user guide",
	Long: `guidegen lays out the Embed Pro user guide from a static table of contents
and per-chapter content, producing a deterministic multi-page PDF.

Usage:
  guidegen generate [flags]
  guidegen validate [content.yaml]
  guidegen import <url|file> [flags]`,
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML configuration file (default: built-in settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Console log level: none, normal or debug")
}

// prepare loads the configuration and builds the logger.
func prepare(_ *cobra.Command, _ []string) error {
	c, err := config.LoadConfiguration(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		c.Logging.ConsoleLogger.Level = flagLogLevel
		if err := c.Validate(); err != nil {
			return err
		}
	}
	cfg = c
	log = cfg.Logging.Prepare()
	log.Debug("Configuration loaded", zap.String("file", flagConfig), zap.String("numbering", cfg.Numbering))
	return nil
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
