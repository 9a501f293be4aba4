// Package main provides the talkto HTTP API server and its companion CLI.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/talkto/internal/config"
	"github.com/jonathan/talkto/internal/observability"
)

var (
	cfgFile   string
	verbose   bool
	colorMode string
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "talkto",
	Short: "Civic engagement API server",
	Long: `talkto finds the elected officials for a zip code, shows which civic issues
are drawing public interest and legislative activity, and recommends advocacy
organizations by issue and metro area.

Example usage:
  talkto serve                      # Start the HTTP API
  talkto reps 94110                 # Officials for a zip code
  talkto trends                     # Public search interest by topic
  talkto activity                   # Recent bills grouped by category
  talkto orgs -c housing -z 94110   # Organizations for an issue`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./talkto.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show upstream request logs")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "color output: auto, always or never")
}

// initConfig loads configuration and routes the standard logger.
func initConfig(cmd *cobra.Command) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if verbose {
		loaded.Verbose = true
	}
	cfg = loaded

	// One-shot commands print results, not request logs
	if cmd.Name() != serveCmd.Name() && !cfg.Verbose {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(os.Stderr)
	}
	return nil
}

// useColors resolves the --color flag against the terminal.
func useColors() (bool, error) {
	switch colorMode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		return !color.NoColor, nil
	default:
		return false, fmt.Errorf("invalid color mode %q: must be auto, always, or never", colorMode)
	}
}

func newPrinter(cmd *cobra.Command) (*observability.Printer, error) {
	colors, err := useColors()
	if err != nil {
		return nil, err
	}
	return observability.NewPrinter(cmd.OutOrStdout()).WithColors(colors), nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
