package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/primetrade/product-dashboard/internal/core/domain"
	"github.com/primetrade/product-dashboard/internal/infrastructure/config"
	"github.com/primetrade/product-dashboard/internal/stub"
	"github.com/primetrade/product-dashboard/internal/stub/store"
	"github.com/primetrade/product-dashboard/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadStub(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Console: true})

	s := store.New()
	if _, err := s.CreateUser(cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword, domain.RoleAdmin); err != nil {
		log.Fatal().Err(err).Msg("seeding admin account")
	}
	log.Info().Str("email", cfg.AdminEmail).Msg("seed admin ready")

	e := stub.NewRouter(s, cfg.JWTSecret, cfg.SessionTTL, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("stub server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("stub backend up")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
