package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"contactbook/cmd"
	"contactbook/config"
	"contactbook/infrastructure/persistence/gormstore"
	"contactbook/pkg/logger"
	"contactbook/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Worker startup failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := parseConfigPath()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.Worker.Enabled {
		logger.Info("Outbox worker is disabled by config; exiting")
		return nil
	}
	if !cfg.UsesSQL() {
		return errors.New("outbox worker requires a SQL database driver")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := cmd.ConnectDatabase(ctx, cfg)
	if err != nil {
		return err
	}

	worker, err := gormstore.NewOutboxWorker(
		gormstore.NewOutboxRepository(db),
		&gormstore.LoggingOutboxPublisher{},
		cfg.Worker,
	)
	if err != nil {
		return fmt.Errorf("failed to create outbox worker: %w", err)
	}
	if cfg.Metrics.Enabled {
		m := metrics.New(prometheus.NewRegistry())
		worker.SetObserver(m)
		go serveMetrics(ctx, cfg, m)
	}

	logger.Info("Outbox worker started",
		zap.Duration("poll_interval", cfg.Worker.PollInterval),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
	)

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("outbox worker exited with error: %w", err)
	}

	logger.Info("Outbox worker stopped")
	return nil
}

func serveMetrics(ctx context.Context, cfg *config.Config, m *metrics.Metrics) {
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, m.Handler())
	server := &http.Server{Addr: ":" + cfg.Worker.MetricsPort, Handler: mux, ReadHeaderTimeout: cfg.Server.ReadTimeout}

	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Worker metrics server failed", zap.Error(err))
	}
}

func parseConfigPath() string {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()
	return configPath
}
