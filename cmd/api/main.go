package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	_ "foodorder/docs"
	"foodorder/pkg/api"
	"foodorder/pkg/catalog"
	"foodorder/pkg/config"
	"foodorder/pkg/logger"
	"foodorder/pkg/otel"
	"foodorder/pkg/session"
	redistracker "foodorder/pkg/session/redis"
)

// @title Food Order API
// @version 1.0
// @description Menu and cart screens for the food-ordering app
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.New(os.Stdout, logger.ParseLevel(cfg.LogLevel), "foodorder", otel.GetTraceID)
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error(context.Background(), "startup", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, shutdownTracing, err := otel.InitTracing(log, otel.Config{
		ServiceName: "foodorder",
		Host:        cfg.OTELHost,
		Probability: cfg.TraceProbability,
	})
	if err != nil {
		return err
	}
	defer shutdownTracing(context.Background())

	menu, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	var tracker session.Tracker = session.NewMemoryTracker()
	if cfg.RedisAddr != "" {
		rt, err := redistracker.Dial(ctx, cfg.RedisAddr)
		if err != nil {
			return err
		}
		defer rt.Close()
		tracker = rt
		log.Info(ctx, "session tracker", "backend", "redis", "addr", cfg.RedisAddr)
	}
	sessions := session.NewRegistry(menu, tracker, log, cfg.SessionTTL)

	h := api.New(api.Options{
		Log:          log,
		Catalog:      menu,
		Sessions:     sessions,
		Tracer:       tp.Tracer("foodorder"),
		CookieTTL:    cfg.SessionTTL,
		SecureCookie: cfg.TLS(),
	})
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sessions.Run(ctx, cfg.SweepEvery)
		return nil
	})
	g.Go(func() error {
		log.Info(ctx, "listening", "addr", cfg.HTTPAddr, "tls", cfg.TLS())
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info(context.Background(), "shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info(context.Background(), "bye")
	return nil
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default()
	}
	return catalog.Open(cfg.CatalogPath)
}
