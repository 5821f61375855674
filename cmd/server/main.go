package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Richpong212/Cert-Prep/internal/analytics"
	"github.com/Richpong212/Cert-Prep/internal/api"
	"github.com/Richpong212/Cert-Prep/internal/domain/catalog"
	"github.com/Richpong212/Cert-Prep/internal/infrastructure/config"
	"github.com/Richpong212/Cert-Prep/internal/service"
	"github.com/Richpong212/Cert-Prep/internal/store"
)

// @title           Cert-Prep API
// @version         1.0
// @description     Certification exam practice — configurable practice sessions, timed exam simulations, scoring, and performance analytics.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := openStore(cfg)
	if err != nil {
		logger.Error("failed to open session store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	cat := catalog.Default()
	sessions := service.NewSessionService(db, cat, logger)
	defer sessions.Close()

	// Re-arm countdowns for timed sessions that were still running when
	// the previous process stopped.
	if err := sessions.ResumeTimers(context.Background()); err != nil {
		logger.Error("failed to resume session timers", "error", err)
		os.Exit(1)
	}

	agg := analytics.NewAggregator(db, cat, logger)
	handler := api.NewHandler(cat, sessions, agg, db, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "store", cfg.StoreBackend)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// openStore picks the persistence backend from config. SQLite is the
// default; Redis suits deployments where several instances share state.
func openStore(cfg *config.Config) (store.SessionStore, error) {
	if cfg.StoreBackend == "redis" {
		return store.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}
	return store.NewSQLite(cfg.DBPath)
}
