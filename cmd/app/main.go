// @title           Cultivation API
// @version         1.0
// @description     Cultivation sessions with temporal bonuses, element affinity and realm progression.
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/Cultivation_Go/docs"
	"github.com/osse101/Cultivation_Go/internal/auth"
	"github.com/osse101/Cultivation_Go/internal/bootstrap"
	"github.com/osse101/Cultivation_Go/internal/config"
	"github.com/osse101/Cultivation_Go/internal/cultivation"
	"github.com/osse101/Cultivation_Go/internal/server"
	"github.com/osse101/Cultivation_Go/internal/worker"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg)

	ctx := context.Background()
	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	engine := bootstrap.InitializeTemporalEngine(cfg)

	bus, publisher := bootstrap.InitializeEventSystem()
	bootstrap.RegisterEventHandlers(bus)

	svc := cultivation.NewService(repos.Cultivation, repos.Profiles, engine, publisher, nil)

	var resetWorker *worker.DailyResetWorker
	if cfg.DailyResetEnabled {
		resetWorker = worker.NewDailyResetWorker(svc, cfg.Location(), nil)
		resetWorker.Start()
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		Version:        cfg.Version,
		TrustedProxies: cfg.TrustedProxies,
		Tokens:         auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, nil),
		Cultivation:    svc,
		Store:          repos,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		DailyResetWorker:   resetWorker,
		ResilientPublisher: publisher,
		Repositories:       repos,
	})
}
