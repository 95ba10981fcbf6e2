package api

import (
	"contactbook/api/health"
	"contactbook/api/middleware"
	"contactbook/api/person"
	"contactbook/config"
	"contactbook/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Router Route configuration
type Router struct {
	engine           *gin.Engine
	config           *config.Config
	metrics          *metrics.Metrics
	healthController *health.Controller
	personController *person.Controller
}

// NewRouter Create route configuration. m may be nil when metrics are disabled.
func NewRouter(
	cfg *config.Config,
	m *metrics.Metrics,
	healthController *health.Controller,
	personController *person.Controller,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// 顺序很重要：request id 最先生成
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.ActorMiddleware(cfg.App.DefaultActor))
	engine.Use(middleware.RecoveryMiddleware())
	if cfg.Tracing.Enabled {
		engine.Use(otelgin.Middleware(cfg.App.Name))
	}
	if m != nil {
		engine.Use(middleware.MetricsMiddleware(m))
	}
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))

	return &Router{
		engine:           engine,
		config:           cfg,
		metrics:          m,
		healthController: healthController,
		personController: personController,
	}
}

// SetupRoutes Set up all routes
func (r *Router) SetupRoutes() {
	r.healthController.RegisterRoutes(r.engine)

	apiGroup := r.engine.Group("/api/v1")
	{
		r.personController.RegisterRoutes(apiGroup)
	}

	if r.metrics != nil && r.config.Metrics.Enabled {
		r.engine.GET(r.config.Metrics.Path, gin.WrapH(r.metrics.Handler()))
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/health",
		})
	})
}

// GetEngine Get Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
