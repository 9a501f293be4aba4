package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talkto/internal/reps"
	"github.com/jonathan/talkto/internal/types"
)

var (
	orgsCategory string
	orgsZip      string
	orgsJSON     bool
	metrosZip    string
	metrosJSON   bool
)

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Recommend advocacy organizations for an issue",
	Long:  "Without --category, lists the issue categories. With --category, lists national organizations and, when --zip falls in a known metro, local ones.",
	Args:  cobra.NoArgs,
	RunE:  runOrgs,
}

var metrosCmd = &cobra.Command{
	Use:   "metros",
	Short: "List metro areas or resolve a zip code to one",
	Args:  cobra.NoArgs,
	RunE:  runMetros,
}

func init() {
	orgsCmd.Flags().StringVarP(&orgsCategory, "category", "c", "", "Issue category id")
	orgsCmd.Flags().StringVarP(&orgsZip, "zip", "z", "", "Zip code for local organizations")
	orgsCmd.Flags().BoolVar(&orgsJSON, "json", false, "Print the API response as JSON")
	rootCmd.AddCommand(orgsCmd)

	metrosCmd.Flags().StringVarP(&metrosZip, "zip", "z", "", "Zip code to resolve")
	metrosCmd.Flags().BoolVar(&metrosJSON, "json", false, "Print as JSON")
	rootCmd.AddCommand(metrosCmd)
}

func runOrgs(cmd *cobra.Command, _ []string) error {
	dir, err := loadDirectory(cfg)
	if err != nil {
		return fmt.Errorf("failed to load organization directory: %w", err)
	}

	if orgsCategory == "" {
		if orgsJSON {
			return writeJSON(cmd, dir.Categories())
		}
		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}
		printer.PrintIssues(dir.Categories())
		return nil
	}

	zip := orgsZip
	if zip != "" {
		if zip, err = reps.ValidateZip(zip); err != nil {
			return err
		}
	}

	rec, err := dir.Recommend(orgsCategory, zip)
	if err != nil {
		return err
	}

	if orgsJSON {
		return writeJSON(cmd, rec)
	}
	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	printer.PrintRecommendation(rec)
	return nil
}

func runMetros(cmd *cobra.Command, _ []string) error {
	dir, err := loadDirectory(cfg)
	if err != nil {
		return fmt.Errorf("failed to load organization directory: %w", err)
	}

	metros := dir.Metros()
	if metrosZip != "" {
		zip, err := reps.ValidateZip(metrosZip)
		if err != nil {
			return err
		}
		m := dir.MetroForZip(zip)
		if m == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "No metro area covers %s\n", zip) //nolint:errcheck
			return nil
		}
		metros = []types.Metro{*m}
	}

	if metrosJSON {
		return writeJSON(cmd, metros)
	}
	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	printer.PrintMetros(metros)
	return nil
}
