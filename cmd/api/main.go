package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/quillhq/chatdesk/internal/api/router"
	"github.com/quillhq/chatdesk/internal/appointments"
	"github.com/quillhq/chatdesk/internal/booking"
	appconfig "github.com/quillhq/chatdesk/internal/config"
	"github.com/quillhq/chatdesk/internal/conversation"
	"github.com/quillhq/chatdesk/internal/http/handlers"
	"github.com/quillhq/chatdesk/internal/observability/metrics"
	"github.com/quillhq/chatdesk/pkg/logging"
	"github.com/quillhq/chatdesk/web"
)

func main() {
	// Local development convenience; ignored when the file is absent.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting chatdesk API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	llm, err := conversation.NewGeminiLLMClient(ctx, cfg.GoogleAPIKey, cfg.GeminiModelID)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}
	defer func() { _ = llm.Close() }()

	// Appointment persistence
	var store appointments.Store
	switch cfg.AppointmentsBackend {
	case "csv":
		store = appointments.NewCSVStore(cfg.AppointmentsCSVPath)
		logger.Info("using csv appointment store", "path", cfg.AppointmentsCSVPath)
	default:
		store = appointments.NewMemoryStore()
		logger.Info("using in-memory appointment store")
	}

	// Booking session storage
	var sessions booking.SessionStore
	switch cfg.SessionBackend {
	case "redis":
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Error("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer func() { _ = client.Close() }()
		sessions = booking.NewRedisSessionStore(client, nil)
		logger.Info("using redis booking sessions", "addr", cfg.RedisAddr)
	default:
		sessions = booking.NewMemorySessionStore()
		logger.Info("using in-memory booking sessions")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	chatMetrics := metrics.NewChatMetrics(registry)

	engine := booking.NewEngine(sessions, store, logger)
	history := conversation.NewHistory(cfg.HistoryLimit)
	svc := conversation.NewService(llm, engine, history, chatMetrics, logger, int32(cfg.LLMMaxTokens))

	routerCfg := &router.Config{
		Logger:              logger,
		ChatHandler:         handlers.NewChatHandler(svc, chatMetrics, logger, cfg.MaxUploadBytes),
		AppointmentsHandler: handlers.NewAppointmentsHandler(store, logger),
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		WidgetFS:            web.Assets(),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
