package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/primetrade/product-dashboard/internal/gateway"
	"github.com/primetrade/product-dashboard/internal/infrastructure/config"
	"github.com/primetrade/product-dashboard/internal/tui"
	"github.com/primetrade/product-dashboard/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadDashboard(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Console: cfg.ConsoleLog})

	client, err := gateway.New(cfg.BaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Str("base_url", cfg.BaseURL).Msg("building gateway client")
	}

	if cfg.MetricsAddr != "" {
		go func() {
			log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics listener up")
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Error().Err(err).Msg("metrics listener stopped")
			}
		}()
	}

	app := tui.New(client, client, client, os.Stdin, os.Stdout, cfg.SuccessPause, log)
	if err := app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("dashboard exited")
	}
}
