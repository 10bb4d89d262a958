package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
	"github.com/aliskhannn/triage-assistant/internal/logger"
	"github.com/aliskhannn/triage-assistant/internal/report"
	"github.com/aliskhannn/triage-assistant/internal/service"
	"github.com/aliskhannn/triage-assistant/internal/storage"
)

// NewRenderCommand creates and returns the render subcommand
func NewRenderCommand(opts *rootOptions) *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "render <assessments.json>",
		Short: "Render a clinical summary from an exported assessment file",
		Long: `Render a clinical summary from the JSON written by /export.

The patient block of the file is used when present, otherwise the configured
patient. The --locale flag wins over the locale stored in the file.
Assessments marked completed that miss a required answer are left out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Report.Format
			}

			log, err := logger.New(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			catalog, err := loadCatalog(cfg.CatalogPath)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open assessments: %w", err)
			}
			defer f.Close()

			snap, err := storage.ReadSnapshot(f)
			if err != nil {
				return err
			}

			if demoted := service.VerifyCompletion(catalog, snap.Assessments); len(demoted) > 0 {
				log.Warn("incomplete assessments ignored", zap.Strings("target_ids", demoted))
			}

			clock := service.SystemClock{}
			patient := entities.NewPatient(cfg.Patient.Name, cfg.Patient.Age, clock.Now())
			if snap.Patient != nil {
				patient = *snap.Patient
			}

			locale := cfg.Locale
			if opts.locale == "" && snap.Locale.Valid() {
				locale = snap.Locale
			}

			generator := service.NewSummaryGenerator(catalog, catalog.Labels(), clock)
			out, err := report.Render(format, generator.Generate(snap.Assessments, patient, locale))
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), outPath, out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, markdown or html (default from config)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout")

	return cmd
}

func writeOutput(stdout io.Writer, path, content string) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, content)
		return err
	}

	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
