package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-dynsolve/pkg/games/shutthebox"
	"github.com/IlikeChooros/go-dynsolve/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Serves the shut-the-box best action endpoint, health checks and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		metrics := server.NewMetrics()
		analyst := shutthebox.NewAnalyst(
			shutthebox.WithLogger(logger),
			shutthebox.WithObserver(metrics.ObserveSolve),
		)
		srv := server.New(analyst,
			server.WithLogger(logger),
			server.WithMetrics(metrics),
			server.WithRateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := server.ListenAndServe(ctx, cfg.Server, srv, logger); err != nil {
			return err
		}
		logger.Info("server stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address, overrides the config")
}
