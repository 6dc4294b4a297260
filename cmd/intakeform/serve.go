package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-intakeform/internal/logger"
	"github.com/goliatone/go-intakeform/internal/server"
)

func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form over HTTP for previewing and printing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv, err := server.NewServer(ctx, server.Options{
				Addr:              a.cfg.HTTP.Addr,
				ReadHeaderTimeout: a.cfg.HTTP.ReadHeaderTimeout,
				WriteTimeout:      a.cfg.HTTP.WriteTimeout,
				MetricsPath:       a.cfg.HTTP.MetricsPath,
				Orchestrator:      newOrchestrator(a.cfg),
				Source:            formSource(a.cfg),
				Sections:          a.cfg.Form.Sections,
			})
			if err != nil {
				return errors.Wrap(err, "create webserver")
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info(ctx, "starting webserver...", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return errors.Wrap(err, "start webserver")
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping webserver...")
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return errors.Wrap(err, "stop webserver")
			}
			return nil
		},
	}

	cmd.Flags().String("addr", "", "listen address (defaults to :8080)")
	return cmd
}
