package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/dutchie/internal/auth"
	"github.com/mmynk/dutchie/internal/config"
	"github.com/mmynk/dutchie/internal/middleware"
	"github.com/mmynk/dutchie/internal/observability"
	"github.com/mmynk/dutchie/internal/ocr"
	"github.com/mmynk/dutchie/internal/ocr/tesseract"
	"github.com/mmynk/dutchie/internal/service"
	"github.com/mmynk/dutchie/internal/storage/sqlite"
	"github.com/mmynk/dutchie/pkg/api/apiconnect"
	"github.com/mmynk/dutchie/pkg/logging"
)

const sweepInterval = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup()
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	if cfg.UsingDevSecret() {
		slog.Warn("SESSION_SECRET not set, using development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.OTLPEndpoint)
	if err != nil {
		slog.Error("Failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			slog.Warn("Tracer shutdown failed", "error", err)
		}
	}()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	metrics := observability.NewMetrics()
	jwtManager := auth.NewJWTManager(cfg.SessionSecret, cfg.SessionTTL)

	recognizer := ocr.Instrument(
		ocr.NewBreakerRecognizer("tesseract", tesseract.New(cfg.OCRLanguages...)),
		metrics.RecordOCR,
	)

	svc := service.NewLedgerService(store, jwtManager,
		service.WithRecognizer(recognizer),
		service.WithRecorder(metrics),
		service.WithLineTolerance(cfg.LineTolerance),
		service.WithOCRConcurrency(cfg.OCRMaxConcurrency),
	)

	// RequireSession runs first so the logging interceptor sees the session id.
	interceptors := connect.WithInterceptors(
		middleware.RequireSession(jwtManager, service.PublicProcedures()...),
		middleware.LoggingInterceptor(metrics),
	)

	mux := http.NewServeMux()
	path, handler := apiconnect.NewLedgerServiceHandler(svc, interceptors)
	mux.Handle(path, handler)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go sweepExpiredSessions(ctx, svc)

	// Add logging and CORS middleware
	loggedHandler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h2c.NewHandler(loggedHandler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown failed", "error", err)
		}
	}()

	slog.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// sweepExpiredSessions periodically drops sessions whose token lifetime has
// passed.
func sweepExpiredSessions(ctx context.Context, svc *service.LedgerService) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if _, err := svc.SweepExpiredSessions(ctx, now); err != nil {
				slog.Warn("Failed to delete expired sessions", "error", err)
			}
		}
	}
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
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
