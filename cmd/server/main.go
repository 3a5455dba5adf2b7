package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"

	"github.com/pawlog/pawlog/internal/config"
	"github.com/pawlog/pawlog/internal/handlers"
	"github.com/pawlog/pawlog/internal/logger"
	"github.com/pawlog/pawlog/internal/middleware"
	"github.com/pawlog/pawlog/internal/services/assistant"
	"github.com/pawlog/pawlog/internal/store"
	"github.com/pawlog/pawlog/internal/telemetry"
)

const version = "1.0.0"

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := newLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync() // Ignore sync errors on shutdown
	}()

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("frontend_url", cfg.FrontendURL),
		zap.String("rate_limit", cfg.RateLimit),
		zap.Bool("redis_backed_rate_limit", cfg.RedisURL != ""),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	// Tracing is best-effort: a missing endpoint or a failed exporter
	// downgrades to running untraced instead of refusing to start.
	if cfg.OTELEnabled {
		shutdownTracer := initTracing(cfg, zapLogger)
		defer shutdownTracer()
	}

	// All domain state is process-local; a restart begins with an empty
	// activity log and chat history.
	activityStore := store.NewActivityStore()
	chatLog := store.NewChatLog()
	chatService := assistant.NewService(assistant.NewResponder(), activityStore, chatLog)
	zapLogger.Info("stores_initialized")

	rateLimitMW, err := middleware.RateLimit(cfg.RateLimit, cfg.RedisURL)
	if err != nil {
		zapLogger.Fatal("failed_to_create_rate_limiter", zap.Error(err))
	}
	zapLogger.Info("rate_limiter_initialized")

	r := mux.NewRouter()
	applyMiddleware(r, cfg, zapLogger)
	registerRoutes(r, rateLimitMW, activityStore, chatLog, chatService)

	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        r,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB max header size
	}

	go func() {
		zapLogger.Info("server_starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}

// newLogger picks console output for debug runs, JSON otherwise
func newLogger(debugMode bool) (*zap.Logger, error) {
	if debugMode {
		return logger.NewDevelopmentLogger(true)
	}
	return logger.NewProductionLogger(false)
}

// initTracing starts the OTLP tracer and returns its shutdown func.
// Failure disables tracing for the process rather than aborting boot.
func initTracing(cfg *config.Config, zapLogger *zap.Logger) func() {
	if cfg.OTELEndpoint == "" {
		zapLogger.Warn("otel_enabled_but_endpoint_not_configured")
		cfg.OTELEnabled = false
		return func() {}
	}

	tp, err := telemetry.InitTracer(context.Background(), "pawlog-api", version, cfg.OTELEndpoint)
	if err != nil {
		zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
		cfg.OTELEnabled = false
		return func() {}
	}

	zapLogger.Info("otel_tracer_initialized", zap.String("endpoint", cfg.OTELEndpoint))
	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx, tp); err != nil {
			zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
		}
	}
}

// applyMiddleware attaches the global chain. gorilla/mux runs middleware
// in registration order, so the first Use call wraps outermost.
func applyMiddleware(r *mux.Router, cfg *config.Config, zapLogger *zap.Logger) {
	zapLogger.Info("setting_up_middleware")

	if cfg.OTELEnabled {
		r.Use(otelmux.Middleware("pawlog-api"))
		zapLogger.Info("otel_middleware_enabled")
	}
	r.Use(middleware.SecurityHeaders(cfg.EnableHSTS))
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize))
	r.Use(middleware.ContentType)
	r.Use(middleware.Timeout(middleware.DefaultRequestTimeout))
	r.Use(middleware.ErrorHandler(zapLogger))
	r.Use(middleware.Audit(zapLogger))
	r.Use(middleware.Logging(zapLogger))
	r.Use(middleware.Metrics)

	log.Println("Middleware setup complete")
}

// registerRoutes wires the operational endpoints on the root router and
// the domain API under /api, where rate limiting applies.
func registerRoutes(r *mux.Router, rateLimitMW func(http.Handler) http.Handler, activityStore *store.ActivityStore, chatLog *store.ChatLog, chatService *assistant.Service) {
	healthHandler := handlers.NewHealthHandler(activityStore, chatLog)

	// Probes, metrics and the OpenAPI document sit outside the rate limit.
	r.HandleFunc("/healthz", healthHandler.Liveness).Methods("GET")
	r.HandleFunc("/version", versionInfo).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	openAPIPath := filepath.Join("api", "openapi", "openapi.yaml")
	handlers.NewOpenAPIHandler(openAPIPath).RegisterRoutes(r)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(rateLimitMW)

	handlers.NewActivityHandler(activityStore).RegisterRoutes(apiRouter.PathPrefix("/activities").Subrouter())
	handlers.NewInsightsHandler(activityStore).RegisterRoutes(apiRouter)
	handlers.NewChatHandler(chatService).RegisterRoutes(apiRouter.PathPrefix("/chat").Subrouter())
	apiRouter.HandleFunc("/health", healthHandler.Status).Methods("GET")

	// Unmatched paths and methods speak the same JSON envelope as the API.
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	// Catch-all for CORS preflights; the CORS middleware has already set
	// the response headers by the time this runs.
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func versionInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, `{"version":"%s","timestamp":"%s"}`, version, time.Now().UTC().Format(time.RFC3339))
}
