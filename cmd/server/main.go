// Command server runs the product-judge HTTP service: it loads the product
// catalog and configuration, wires the decision engine behind the HTTP
// boundary, and serves until SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TodFrog/product-judge/internal/catalog"
	"github.com/TodFrog/product-judge/internal/config"
	"github.com/TodFrog/product-judge/internal/httpapi"
	"github.com/TodFrog/product-judge/internal/judge"
	"github.com/TodFrog/product-judge/internal/logging"
)

func main() {
	cfg, err := config.LoadService()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	cat, err := loadCatalog(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load catalog")
	}
	logging.Info().Int("size", cat.Size()).Msg("catalog loaded")

	engine := judge.NewEngine(cat)
	router := httpapi.NewRouter(engine, cat)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		logging.Error().Err(err).Msg("http server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// loadCatalog loads the product catalog from cfg.CatalogPath when set,
// falling back to the built-in table.
func loadCatalog(cfg config.Service) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.New(catalog.Builtin()), nil
	}
	return catalog.LoadYAML(cfg.CatalogPath)
}
