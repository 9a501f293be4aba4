package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var repsJSON bool

var repsCmd = &cobra.Command{
	Use:   "reps ZIP",
	Short: "Look up elected officials for a zip code",
	Long:  "Looks up the senators, house representative and state officials for a five-digit zip code.",
	Args:  cobra.ExactArgs(1),
	RunE:  runReps,
}

func init() {
	repsCmd.Flags().BoolVar(&repsJSON, "json", false, "Print the API response as JSON")
	rootCmd.AddCommand(repsCmd)
}

func runReps(cmd *cobra.Command, args []string) error {
	service, err := newRepsService(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	resp, err := service.Lookup(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if repsJSON {
		return writeJSON(cmd, resp)
	}

	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	printer.PrintRepresentatives(resp)
	return nil
}
