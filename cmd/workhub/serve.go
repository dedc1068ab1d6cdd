package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/workhub/internal/app"
	"github.com/dropDatabas3/workhub/internal/config"
	"github.com/dropDatabas3/workhub/internal/observability/logger"
)

func newServeCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			srv := &http.Server{
				Addr:         cfg.Server.Addr,
				Handler:      a.Handler,
				ReadTimeout:  config.Duration(cfg.Server.ReadTimeout, 10*time.Second),
				WriteTimeout: config.Duration(cfg.Server.WriteTimeout, 30*time.Second),
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.L().Info("servidor escuchando", logger.String("addr", cfg.Server.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				logger.L().Info("apagando servidor")
				return srv.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
	}
}
