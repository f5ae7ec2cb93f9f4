package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/neomorfeo/hostiq/internal/adapter/daemon"
	"github.com/neomorfeo/hostiq/internal/adapter/fsm"
	otelx "github.com/neomorfeo/hostiq/internal/adapter/otel"
	riverx "github.com/neomorfeo/hostiq/internal/adapter/river"
	"github.com/neomorfeo/hostiq/internal/adapter/sqladmin"
	"github.com/neomorfeo/hostiq/internal/adapter/sqlite"
	"github.com/neomorfeo/hostiq/internal/app"
	"github.com/neomorfeo/hostiq/internal/config"

	handler "github.com/neomorfeo/hostiq/internal/adapter/http"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// --- Telemetry ---
	providers, err := otelx.Setup(ctx, otelx.ConfigFromEnv())
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Error("otel shutdown", "error", err)
		}
	}()

	// --- Adapters (out) ---
	db, err := otelx.OpenDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	store, err := sqlite.NewFromDB(db)
	if err != nil {
		log.Fatalf("migrations: %v", err)
	}
	defer store.Close()

	validator := fsm.New()
	notifier := otelx.NewTracingNotifier(
		daemon.New(cfg.DaemonAddr, cfg.Version, cfg.DaemonTimeout, logger))
	serverAdmin := sqladmin.New(cfg.SQLDataDir, logger)
	sweeper := otelx.NewTracingSweeper(store)

	// --- Application ---
	sqlSvc := app.NewSQLService(store, serverAdmin)
	svc := handler.Services{
		Customers: app.NewCustomerService(store, sqlSvc, notifier, validator, cfg.HardMailSuspension),
		Aliases:   app.NewAliasService(store, notifier, validator),
		SQL:       sqlSvc,
		Resellers: app.NewResellerService(store),
		Debugger:  app.NewDebuggerService(sweeper, notifier),
	}

	// --- Reconciliation sweep ---
	sweepClient, err := riverx.Setup(ctx, store.DB(), sweeper, cfg.SweepInterval)
	if err != nil {
		log.Fatalf("river: %v", err)
	}
	if err := sweepClient.Start(ctx); err != nil {
		log.Fatalf("river start: %v", err)
	}

	// --- Adapters (in) ---
	router := chi.NewMux()
	router.Use(otelchi.Middleware("hostiq", otelchi.WithChiRoutes(router)))
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	api := humachi.New(router, huma.DefaultConfig("hostiq", cfg.Version))
	handler.Register(api, svc)

	// --- Server ---
	port := strconv.Itoa(cfg.Port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("hostiq listening", "port", port)
		logger.Info("API docs", "url", "http://localhost:"+port+"/docs")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := sweepClient.Stop(shutdownCtx); err != nil {
		logger.Error("river stop", "error", err)
	}

	logger.Info("stopped")
}
