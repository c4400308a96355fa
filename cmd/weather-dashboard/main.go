package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"weather-dashboard/config"
	_ "weather-dashboard/docs"
	v1 "weather-dashboard/internal/controllers/http/v1"
	"weather-dashboard/internal/observability"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/history"
	"weather-dashboard/pkg/httpserver"
	"weather-dashboard/pkg/logger"
	"weather-dashboard/pkg/observe"
)

// @title Weather Dashboard API
// @version 1.0.0
// @description Historical daily weather dashboard backed by the Open-Meteo archive API.
// @description Loads max/min temperature and precipitation for a location and date range and serves chart-ready records.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

// @tag.name Weather
// @tag.description Historical weather load operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	sentryHook := observe.NewSentryHook(cnf.AppEnv, cnf.AppName, cnf.SentryDSN, cnf.IsDevelopment())
	l := logger.NewZapLogger(cnf.AppName, os.Stdout, sentryHook)

	app := httpserver.InitFiberServer(cnf.AppName)

	httpClient := &http.Client{Timeout: cnf.Weather.Timeout()}
	repo := repositories.NewOpenMeteoRepository(cnf.Weather.BaseURL, l, httpClient)

	metrics := observability.NewMetrics()
	service := history.NewHistoryService(repo, l, metrics)

	v1.NewRouter(app, service, cnf, l)

	ops := observability.NewServer(":"+cnf.OpsPort, l)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	go func() {
		if err := ops.Start(); err != nil && err != http.ErrServerClosed {
			l.Error(err, map[string]any{"addr": cnf.OpsPort})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":    cnf.Port,
		"opsPort": cnf.OpsPort,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = ops.Shutdown(shutdownCtx)
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
