package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"contactbook/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadMemoryConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("CONTACTBOOK_DATABASE_DRIVER", "memory")
	t.Setenv("CONTACTBOOK_APP_ENV", "test")
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg
}

func TestBuildInMemoryApp(t *testing.T) {
	cfg := loadMemoryConfig(t)
	ctx := context.Background()

	app, err := NewBuilder(cfg).WithRegistry(prometheus.NewRegistry()).Build(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close(ctx) })

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		app.Handler().ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/health/ready", "").Code)

	w := serve(http.MethodPost, "/api/v1/people", `{
		"fullName": "Grace Hopper",
		"homeAddress": {"addressLine": "1 Navy Yard", "phoneNumbers": ["+15551234"]},
		"businessAddress": {"addressLine": "2 Harvard Sq", "phoneNumbers": []}
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/v1/people/1", w.Header().Get("Location"))

	w = serve(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `contactbook_operations_total{operation="CreatePerson",outcome="success"} 1`)
}
