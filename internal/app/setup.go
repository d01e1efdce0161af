// Package app contains the application setup for the storefront.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/storefront/internal/cart"
	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/abgdnv/storefront/internal/config"
	"github.com/abgdnv/storefront/internal/transport/web"
	"github.com/abgdnv/storefront/pkg/server"
	pkgweb "github.com/abgdnv/storefront/pkg/web"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Dependencies struct {
	Catalog *catalog.Client
	Carts   *cart.Store
	Logger  *slog.Logger
}

func SetupDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	return &Dependencies{
		Catalog: catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.Timeout, logger),
		Carts:   cart.NewStore(),
		Logger:  logger,
	}
}

// SetupHttpHandler initializes the router, middleware and storefront routes.
// Used directly by tests to exercise the full HTTP surface.
func SetupHttpHandler(deps *Dependencies) (http.Handler, error) {
	mux := server.NewChiRouter(deps.Logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := pkgweb.NewHTTPMetrics(registry)
	mux.Use(metrics.Middleware)

	handler, err := web.NewHandler(deps.Catalog, deps.Carts, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}
	handler.RegisterRoutes(mux)

	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return mux, nil
}

// SetupHttpServer creates and configures the HTTP server for the storefront.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) (*http.Server, error) {
	mux, err := SetupHttpHandler(deps)
	if err != nil {
		return nil, err
	}

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux), nil
}
