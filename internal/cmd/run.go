package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/triage-assistant/internal/delivery/terminal"
	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
	"github.com/aliskhannn/triage-assistant/internal/logger"
	"github.com/aliskhannn/triage-assistant/internal/service"
)

// NewRunCommand creates and returns the run subcommand
func NewRunCommand(opts *rootOptions) *cobra.Command {
	var noIntake bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive triage session",
		Long: `Start an interactive session on stdin/stdout.

Pick a body zone or symptom, answer its questions, then print the clinical
summary with /summary. Type /help inside the session for every command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
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

			clock := service.SystemClock{}
			patient := entities.NewPatient(cfg.Patient.Name, cfg.Patient.Age, clock.Now())
			session := service.NewSession(catalog, catalog.Labels(), patient, cfg.Locale, clock, log)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			f, _ := out.(*os.File)

			handler := terminal.NewHandler(cmd.InOrStdin(), out, log, session, terminal.Options{
				ReportFormat: cfg.Report.Format,
				Color:        terminal.ColorEnabled(cfg.Color, f),
				Intake:       !noIntake && strings.TrimSpace(cfg.Patient.Name) == "",
			})

			if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noIntake, "no-intake", false, "skip the patient name and age questions")

	return cmd
}
