package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"contactbook/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(checks map[string]CheckFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	cfg := &config.Config{App: config.AppConfig{Version: "test", Env: "production"}}
	NewController(cfg, checks).RegisterRoutes(engine)
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthy(t *testing.T) {
	engine := newEngine(map[string]CheckFunc{
		"database": func(context.Context) error { return nil },
	})

	assert.Equal(t, http.StatusOK, get(engine, "/health").Code)
	assert.Equal(t, http.StatusOK, get(engine, "/health/live").Code)
	assert.Equal(t, http.StatusOK, get(engine, "/health/ready").Code)
}

func TestUnhealthyDatabase(t *testing.T) {
	engine := newEngine(map[string]CheckFunc{
		"database": func(context.Context) error { return errors.New("dial tcp: refused") },
	})

	w := get(engine, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "dial tcp: refused")
	assert.Equal(t, http.StatusServiceUnavailable, get(engine, "/health/ready").Code)
	assert.Equal(t, http.StatusOK, get(engine, "/health/live").Code)
}

func TestNoChecksInMemoryMode(t *testing.T) {
	engine := newEngine(nil)
	assert.Equal(t, http.StatusOK, get(engine, "/health/ready").Code)
}
