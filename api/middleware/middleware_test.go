package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contactbook/api/ctxutil"
	"contactbook/config"
	"contactbook/infrastructure/persistence"
	"contactbook/pkg/logger"
	"contactbook/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequestIDAndActorReachRequestContext(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestIDMiddleware(), ActorMiddleware("system"))

	var requestID, actor string
	engine.GET("/", func(c *gin.Context) {
		ctx := ctxutil.FromGin(c)
		requestID = persistence.RequestIDFromContext(ctx)
		actor = persistence.ActorFromContext(ctx)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	req.Header.Set(ctxutil.UserIDHeader, "alice")
	w := serve(engine, req)

	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "alice", actor)

	w = serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, "system", actor)
}

func TestRecoveryMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestIDMiddleware(), RecoveryMiddleware())
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestRateLimitMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(RateLimitMiddleware(&config.RateLimitConfig{Enabled: true, Rate: 0.001, Burst: 1}))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(engine, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(engine, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestCORSMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(CORSMiddleware(&config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "PUT"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       time.Hour,
	}))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	w := serve(engine, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = serve(engine, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	engine := gin.New()
	engine.Use(MetricsMiddleware(m))
	engine.GET("/people/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(engine, httptest.NewRequest(http.MethodGet, "/people/1", nil))
	serve(engine, httptest.NewRequest(http.MethodGet, "/people/2", nil))
	serve(engine, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/people/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestLoggingMiddlewares(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	defer logger.Replace(zap.New(core))()

	engine := gin.New()
	engine.Use(RequestIDMiddleware(), LoggingMiddleware())
	people := engine.Group("/people", PersonRequestLoggingMiddleware())
	people.GET("/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	people.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/people/7", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	serve(engine, req)
	serve(engine, httptest.NewRequest(http.MethodGet, "/people", nil))

	personLogs := logs.FilterMessage("Person request").All()
	require.Len(t, personLogs, 1)
	assert.Equal(t, "7", personLogs[0].ContextMap()["person_id"])
	assert.Equal(t, "req-7", personLogs[0].ContextMap()["request_id"])

	access := logs.FilterMessage("HTTP Request").All()
	require.Len(t, access, 2)
	assert.Equal(t, "req-7", access[0].ContextMap()["request_id"])
}
