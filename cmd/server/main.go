package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/cosca/portal/internal/auth"
	"github.com/cosca/portal/internal/config"
	"github.com/cosca/portal/internal/export"
	"github.com/cosca/portal/internal/insight"
	"github.com/cosca/portal/internal/metrics"
	"github.com/cosca/portal/internal/middleware"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/observability"
	"github.com/cosca/portal/internal/seed"
	"github.com/cosca/portal/internal/service"
	"github.com/cosca/portal/internal/storage/sqlite"
	"github.com/cosca/portal/pkg/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Setup structured logging
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, version)
	if err != nil {
		slog.Warn("Sentry disabled", "error", err)
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize SQLite storage
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	if cfg.SeedDemoData {
		loaded, err := seed.LoadIfEmpty(ctx, store)
		if err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		if loaded {
			slog.Info("Seeded empty database with demo data")
		}
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store, cfg.StrictLogin)
	if !cfg.StrictLogin {
		slog.Warn("Student login accepts an empty password; set PORTAL_STRICT_LOGIN=true to require it")
	}

	svcs := &service.Services{
		Auth:       service.NewAuthService(authenticator, jwtManager, store, slog.Default()),
		Navigation: service.NewNavigationService(store),
		Students:   service.NewStudentService(store),
		Billing:    service.NewBillingService(store, insight.New(cfg.GeminiKey, cfg.GeminiModel)),
		Admin:      service.NewAdminService(store),
		Dashboard:  service.NewDashboardService(store),
	}

	mux := http.NewServeMux()

	// Register Connect services
	svcs.Register(mux, service.Interceptors(jwtManager, store))

	// Downloads for finance and super admins
	exportAuth := middleware.RequireRoleHTTP(jwtManager, models.RoleFinance, models.RoleSuperAdmin)
	mux.Handle("/export/transactions.xlsx", exportAuth(export.TransactionsHandler(store)))
	mux.Handle("/export/accounts.xlsx", exportAuth(export.AccountsHandler(store)))
	mux.Handle("/export/students.json", exportAuth(export.StudentsJSONHandler(store)))

	// Snapshot import, super admins only
	importAuth := middleware.RequireRoleHTTP(jwtManager, models.RoleSuperAdmin)
	mux.Handle("/import/students.json", importAuth(export.StudentsImportHandler(store)))

	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 800*time.Millisecond)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			http.Error(w, "db not ok: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	// Add logging and CORS middleware
	loggedHandler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h2c.NewHandler(loggedHandler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.HTTPAddr, "env", cfg.Env, "version", version)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		slog.Info("Shutting down")
	}

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		slog.Error("Could not stop server gracefully", "error", err)
		return srv.Close()
	}
	return nil
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, Content-Disposition")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
