package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rovshanmuradov/inbeef/internal/server"
	"github.com/rovshanmuradov/inbeef/internal/simulation"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Inicia o formulário web e a API HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			assets := a.branding()
			srv, err := server.New(server.Config{
				Addr:            addr,
				ReadTimeout:     a.cfg.Server.ReadTimeout,
				WriteTimeout:    a.cfg.Server.WriteTimeout,
				ShutdownTimeout: a.cfg.Server.ShutdownTimeout,
				Logger:          a.logger,
				Engine:          simulation.NewEngine(a.logger),
				Exporter:        a.exporter(assets),
				Assets:          assets,
				Defaults:        a.cfg.Defaults,
			})
			if err != nil {
				return err
			}
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "endereço de escuta (padrão: server.addr da configuração)")
	return cmd
}
