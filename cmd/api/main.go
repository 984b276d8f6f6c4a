package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/etorres-dev/modernstore-backend/api/routes"
	cartsvc "github.com/etorres-dev/modernstore-backend/internal/cart"
	catalogsvc "github.com/etorres-dev/modernstore-backend/internal/catalog"
	checkoutsvc "github.com/etorres-dev/modernstore-backend/internal/checkout"
	contactsvc "github.com/etorres-dev/modernstore-backend/internal/contact"
	"github.com/etorres-dev/modernstore-backend/pkg/config"
	"github.com/etorres-dev/modernstore-backend/pkg/logger"
	"github.com/etorres-dev/modernstore-backend/pkg/metrics"
)

const pruneInterval = 10 * time.Minute

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	cartMetrics := metrics.NewCartMetrics(registry)

	catalogService, err := catalogsvc.NewService()
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog", err)
		os.Exit(1)
	}

	cartStore := cartsvc.NewStore(cfg.Session.TTL, cartMetrics)

	checkoutService, err := checkoutsvc.NewService(cartStore, cfg.Checkout, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	contactService := contactsvc.NewService(logg)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:         addr,
		Handler:      routes.NewRouter(cfg, logg, registry, httpMetrics, catalogService, cartStore, checkoutService, contactService),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	stop := make(chan struct{})
	go pruneLoop(ctx, logg, cartStore, stop)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-sigCh:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	close(stop)
}

// pruneLoop evicts carts whose sessions have gone idle past the TTL.
func pruneLoop(ctx context.Context, logg *logger.Logger, store *cartsvc.Store, stop <-chan struct{}) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if pruned := store.PruneIdle(time.Now()); pruned > 0 {
				logg.Info(logg.WithField(ctx, "pruned", pruned), "cart.sessions_pruned")
			}
		}
	}
}
