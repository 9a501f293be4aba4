package main

import (
	"github.com/spf13/cobra"
)

var trendsJSON bool

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show public search interest in civic topics",
	Long:  "Queries Google Trends for the civic topic list and ranks topics by mean interest. Falls back to curated data when too few topics succeed.",
	Args:  cobra.NoArgs,
	RunE:  runTrends,
}

func init() {
	trendsCmd.Flags().BoolVar(&trendsJSON, "json", false, "Print the API response as JSON")
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, _ []string) error {
	resp := newTrendsAggregator(cfg).PublicTrends(cmd.Context())

	if trendsJSON {
		return writeJSON(cmd, resp)
	}

	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	printer.PrintPublicTrends(resp)
	return nil
}
