package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/adapters/handler"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/adapters/postgres"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/adapters/recurly"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/api"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/config"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "gateway"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	amountPolicy, err := domain.ParseAmountPolicy(cfg.Recurly.AmountPolicy)
	if err != nil {
		logger.Error("invalid amount policy", "error", err)
		os.Exit(1)
	}

	factory := recurly.NewClientFactory(recurly.Options{
		Recurly: cfg.Recurly,
		Retry:   cfg.Retry,
		Breaker: cfg.Breaker,
		Metrics: recurly.NewMetrics(metricsNamespace, registry),
		Logger:  logger,
	})

	gateway := service.NewGateway(factory, amountPolicy, logger)
	if err := gateway.Configure(domain.Credentials{
		Subdomain: cfg.Recurly.Subdomain,
		APIKey:    cfg.Recurly.APIKey,
	}); err != nil {
		logger.Error("failed to configure gateway", "error", err)
		os.Exit(1)
	}

	cardRepo := postgres.NewCardRepository(db)
	vault := service.NewVaultService(cardRepo, gateway, logger)

	h := handler.NewPaymentHandler(gateway, vault, logger)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	h.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /healthz", handler.HealthHandler(db))

	validate, err := handler.OpenAPIValidator(api.Spec())
	if err != nil {
		logger.Error("failed to load api document", "error", err)
		os.Exit(1)
	}

	httpMetrics := handler.NewHTTPMetrics(metricsNamespace, registry)

	router := httpMetrics.Middleware(validate(mux))

	srvHandler := handler.Recovery(logger)(router)
	srvHandler = handler.Logging(logger)(srvHandler)
	srvHandler = handler.Timeout(cfg.Server.ReadTimeout)(srvHandler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      srvHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
