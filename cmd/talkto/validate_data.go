package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jonathan/talkto/internal/directory"
	"github.com/jonathan/talkto/internal/schemas"
	datasets "github.com/jonathan/talkto/schemas"
)

var (
	validateOrganizations      string
	validateLocalOrganizations string
)

var validateDataCmd = &cobra.Command{
	Use:   "validate-data",
	Short: "Validate organization datasets",
	Long:  "Validates organizations.json and local_organizations.json against their JSON Schemas, then checks cross-references and zip prefix overlap. Without flags, the configured files or the embedded datasets are checked.",
	Args:  cobra.NoArgs,
	RunE:  runValidateData,
}

func init() {
	validateDataCmd.Flags().StringVar(&validateOrganizations, "organizations", "", "Path to organizations.json")
	validateDataCmd.Flags().StringVar(&validateLocalOrganizations, "local-organizations", "", "Path to local_organizations.json")
	rootCmd.AddCommand(validateDataCmd)
}

func runValidateData(cmd *cobra.Command, _ []string) error {
	printer, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	orgPath := firstNonEmpty(validateOrganizations, cfg.OrganizationsFile)
	localPath := firstNonEmpty(validateLocalOrganizations, cfg.LocalOrganizationsFile)

	failed := false
	for _, f := range []struct {
		name, path, schema string
	}{
		{"organizations.json", orgPath, datasets.Organizations},
		{"local_organizations.json", localPath, datasets.LocalOrganizations},
	} {
		if f.path == "" {
			continue
		}
		err := schemas.ValidateFile(f.schema, f.path)
		printer.PrintValidation(f.name, f.path, err)
		if err != nil {
			failed = true
		}
	}
	if failed {
		return errors.New("schema validation failed")
	}

	_, err = directory.LoadFiles(orgPath, localPath)
	printer.PrintValidation("directory", describeSources(orgPath, localPath), err)
	if err != nil {
		return errors.New("dataset integrity check failed")
	}
	return nil
}

func describeSources(orgPath, localPath string) string {
	return firstNonEmpty(orgPath, "embedded") + ", " + firstNonEmpty(localPath, "embedded")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
