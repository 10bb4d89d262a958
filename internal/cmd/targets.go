package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
	"github.com/aliskhannn/triage-assistant/internal/repository"
)

// NewTargetsCommand creates and returns the targets subcommand
func NewTargetsCommand(opts *rootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List the body zones and symptoms of the catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			catalog, err := loadCatalog(cfg.CatalogPath)
			if err != nil {
				return err
			}

			return listTargets(cmd.OutOrStdout(), catalog, entities.TargetKind(kind), cfg.Locale)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "only list targets of this kind (zone or symptom)")

	return cmd
}

func listTargets(w io.Writer, catalog *repository.CatalogRepository, kind entities.TargetKind, l entities.Locale) error {
	targets := catalog.GetAll()
	switch kind {
	case "":
	case entities.TargetZone, entities.TargetSymptom:
		targets = catalog.GetByKind(kind)
	default:
		return fmt.Errorf("unknown target kind %q (zone or symptom)", kind)
	}

	for _, t := range targets {
		if _, err := fmt.Fprintf(w, "%-20s %-8s %-15s %-30s %d\n",
			t.ID, t.Kind, t.Category, t.Name.Get(l), len(t.Questions)); err != nil {
			return err
		}
	}
	return nil
}
