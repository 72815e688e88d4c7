package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rovshanmuradov/inbeef/internal/simulation"
	"github.com/rovshanmuradov/inbeef/internal/ui"
	"github.com/spf13/cobra"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "tui",
		Short:       "Formulário interativo no terminal",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationQuietConsole: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.logger.Info("Starting TUI")

			model := ui.NewSimulator(ui.Options{
				Logger:    a.logger,
				Engine:    simulation.NewEngine(a.logger),
				Exporter:  a.exporter(a.branding()),
				OutputDir: a.cfg.OutputDir,
				Defaults:  a.cfg.Defaults,
			})
			return ui.Run(ctx, model, a.logger)
		},
	}
}
