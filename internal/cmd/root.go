package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/triage-assistant/internal/config"
	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
	"github.com/aliskhannn/triage-assistant/internal/repository"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	locale     string
}

// NewRootCommand creates and returns the root cobra command for triage
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "triage",
		Short: "Patient self-triage questionnaire",
		Long: `Triage walks a patient through the OCRSTFIT questionnaire
(Onset, Character, Radiation, Severity, Timing, Factors, Associated signs,
Treatment history) for each body zone or symptom they report, and renders
a clinical summary for the physician.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ./config/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.locale, "locale", "", "display language (fr or ar)")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewTargetsCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// load reads the configuration and applies the --locale override.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	if o.locale != "" {
		l, err := entities.ParseLocale(o.locale)
		if err != nil {
			return nil, err
		}
		cfg.Locale = l
		cfg.LocaleTag = o.locale
	}

	return cfg, nil
}

func loadCatalog(path string) (*repository.CatalogRepository, error) {
	catalog, err := repository.NewCatalogRepository(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return catalog, nil
}
