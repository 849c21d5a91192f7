package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hoclieu/tracuu/internal/config"
	dbRedis "github.com/hoclieu/tracuu/internal/db/redis"
	logpkg "github.com/hoclieu/tracuu/internal/logger"
	"github.com/hoclieu/tracuu/internal/metrics"
	categoryrepo "github.com/hoclieu/tracuu/internal/repository/category"
	sectionrepo "github.com/hoclieu/tracuu/internal/repository/section"
	tagrepo "github.com/hoclieu/tracuu/internal/repository/tag"
	topicrepo "github.com/hoclieu/tracuu/internal/repository/topic"
	chiTransport "github.com/hoclieu/tracuu/internal/transport/chi"
	categoryuc "github.com/hoclieu/tracuu/internal/usecase/category"
	healthuc "github.com/hoclieu/tracuu/internal/usecase/health"
	relateduc "github.com/hoclieu/tracuu/internal/usecase/related"
	searchuc "github.com/hoclieu/tracuu/internal/usecase/search"
	sectionuc "github.com/hoclieu/tracuu/internal/usecase/section"
	taguc "github.com/hoclieu/tracuu/internal/usecase/tag"
	topicuc "github.com/hoclieu/tracuu/internal/usecase/topic"
	"github.com/hoclieu/tracuu/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting tracuu API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register ranking metrics explicitly (no init())
	metrics.RegisterRankingMetrics()

	// Create repositories
	prefix := cfg.Storage.KeyPrefix
	topicRepo := topicrepo.New(store).WithPrefix(prefix)
	sectionRepo := sectionrepo.New(store).WithPrefix(prefix)
	categoryRepo := categoryrepo.New(store).WithPrefix(prefix)
	tagRepo := tagrepo.New(store).WithPrefix(prefix)

	// Create use case services
	searchSvc := searchuc.New(topicRepo, sectionRepo, categoryRepo)
	relatedSvc := relateduc.New(topicRepo)
	topicSvc := topicuc.NewService(topicRepo, sectionRepo, categoryRepo, tagRepo)
	sectionSvc := sectionuc.NewService(sectionRepo, topicRepo)
	categorySvc := categoryuc.NewService(categoryRepo, topicRepo)
	tagSvc := taguc.NewService(tagRepo, topicRepo)
	healthSvc := healthuc.New(store)

	// Create chi server
	server := chiTransport.NewServer(
		searchSvc, relatedSvc, topicSvc, sectionSvc, categorySvc, tagSvc, healthSvc,
		cfg.Search, cfg.Related, logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.MountRoutes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
