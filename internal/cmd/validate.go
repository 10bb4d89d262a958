package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
	"github.com/aliskhannn/triage-assistant/internal/repository"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [catalog-file]",
		Short: "Validate a catalogue file",
		Long: `Load and validate a catalogue (YAML or JSON), checking for:
  - Duplicate target and question ids
  - Unknown question sets and question types
  - Choice questions without options
  - Dependencies on unknown or later questions, or on values that are not options

Without an argument the configured catalog_path is validated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := opts.load()
				if err != nil {
					return err
				}
				path = cfg.CatalogPath
			}

			return validateCatalog(path, cmd.OutOrStdout())
		},
	}

	return cmd
}

// validateCatalog loads the catalogue at path and reports its contents to output.
func validateCatalog(path string, output io.Writer) error {
	catalog, err := repository.NewCatalogRepository(path)
	if err != nil {
		fmt.Fprintf(output, "Validation failed: %v\n", err)
		return err
	}

	questions := 0
	for _, t := range catalog.GetAll() {
		questions += len(t.Questions)
	}

	fmt.Fprintf(output, "Catalog is valid: %s\n", path)
	fmt.Fprintf(output, "  %d zones, %d symptoms, %d questions\n",
		len(catalog.GetByKind(entities.TargetZone)),
		len(catalog.GetByKind(entities.TargetSymptom)),
		questions,
	)
	return nil
}
