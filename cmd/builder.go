package cmd

import (
	"context"
	"fmt"
	"net/http"

	"contactbook/api"
	"contactbook/api/health"
	apiperson "contactbook/api/person"
	personapp "contactbook/application/person"
	"contactbook/config"
	"contactbook/infrastructure/persistence/gormstore"
	"contactbook/pkg/logger"
	"contactbook/pkg/metrics"
	"contactbook/pkg/tracing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// AppBuilder builds an App from configuration
type AppBuilder struct {
	cfg      *config.Config
	registry *prometheus.Registry
}

// NewBuilder creates a new AppBuilder
func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{cfg: cfg}
}

// WithRegistry uses reg instead of a fresh registry; tests pass their own.
func (b *AppBuilder) WithRegistry(reg *prometheus.Registry) *AppBuilder {
	b.registry = reg
	return b
}

// Build wires tracing, metrics, persistence, the people service and the HTTP server.
// The logger must already be initialised.
func (b *AppBuilder) Build(ctx context.Context) (*App, error) {
	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	shutdownTracing, err := tracing.Init(ctx, b.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	var m *metrics.Metrics
	if b.cfg.Metrics.Enabled {
		reg := b.registry
		if reg == nil {
			reg = prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		}
		m = metrics.New(reg)
	}

	st, err := openStore(ctx, b.cfg)
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, err
	}

	opts := []personapp.Option{
		personapp.WithDefaultActor(b.cfg.App.DefaultActor),
		personapp.WithTracer(tracing.Tracer()),
	}
	if m != nil {
		opts = append(opts, personapp.WithRecorder(m))
	}
	service := personapp.NewApplicationService(st.people, st.queries, st.readModel, st.uowFactory, opts...)

	checks := map[string]health.CheckFunc{}
	if st.db != nil {
		db := st.db
		checks["database"] = func(ctx context.Context) error { return gormstore.Ping(ctx, db) }
	}

	router := api.NewRouter(b.cfg, m, health.NewController(b.cfg, checks), apiperson.NewController(service))
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + b.cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  b.cfg.Server.ReadTimeout,
		WriteTimeout: b.cfg.Server.WriteTimeout,
	}

	return &App{
		config:          b.cfg,
		router:          router,
		server:          server,
		store:           st,
		shutdownTracing: shutdownTracing,
	}, nil
}
