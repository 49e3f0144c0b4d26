package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tdhoang/marketgraph/internal/config"
	"github.com/tdhoang/marketgraph/internal/graph"
	"github.com/tdhoang/marketgraph/internal/repo"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg.LogFormat)

	if cfg.Env == "prod" && cfg.JWTSecret == "supersecretkey" {
		slog.Error("JWT_SECRET must be set to a non-default value when ENV=prod")
		os.Exit(1)
	}

	ctx := context.Background()

	g, err := graph.Connect(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPass)
	if err != nil {
		slog.Error("failed to connect to neo4j", "uri", cfg.Neo4jURI, "error", err)
		os.Exit(1)
	}
	defer g.Close(ctx)

	if err := g.EnsureSchema(ctx); err != nil {
		slog.Error("failed to apply schema constraints", "error", err)
		os.Exit(1)
	}

	slog.Info("connected to neo4j", "uri", cfg.Neo4jURI)

	st := stores{
		users:    repo.NewUserRepo(g),
		products: repo.NewProductRepo(g),
		cart:     repo.NewCartRepo(g),
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRouter(st, g, cfg),
	}

	errCh := make(chan error, 1)
	go func() {
		if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
			slog.Info("starting server with TLS", "port", cfg.Port)
			errCh <- srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			slog.Info("starting server", "port", cfg.Port)
			errCh <- srv.ListenAndServe()
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}
}

func setupLogger(format string) {
	if format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}
}
