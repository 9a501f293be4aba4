package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activityJSON bool

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show legislative activity by issue category",
	Long:  "Fetches the most recently updated bills from Congress.gov and groups them into issue categories. Requires CONGRESS_API_KEY.",
	Args:  cobra.NoArgs,
	RunE:  runActivity,
}

func init() {
	activityCmd.Flags().BoolVar(&activityJSON, "json", false, "Print the API response as JSON")
	rootCmd.AddCommand(activityCmd)
}

func runActivity(cmd *cobra.Command, _ []string) error {
	resp, err := newActivityService(cfg).Trending(cmd.Context())
	if err != nil {
		return fmt.Errorf("legislative activity: %w", err)
	}

	if activityJSON {
		return writeJSON(cmd, resp)
	}

	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	printer.PrintTrending(resp)
	return nil
}
