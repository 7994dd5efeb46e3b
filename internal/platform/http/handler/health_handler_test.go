package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(h gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/healthz", h)
	r.HEAD("/healthz", h)
	r.OPTIONS("/healthz", h)
	r.POST("/healthz", h)
	r.PUT("/healthz", h)
	r.DELETE("/healthz", h)
	return r
}

func TestHealth_GET(t *testing.T) {
	t.Parallel()

	router := setupRouter(Health)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestHealth_HEAD(t *testing.T) {
	t.Parallel()

	router := setupRouter(Health)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	// HEAD should have no body
	assert.Zero(t, w.Body.Len())
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestHealth_ResponseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method         string
		expectedStatus int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodHead, http.StatusOK},
		{http.MethodOptions, http.StatusNoContent},
		{http.MethodPost, http.StatusOK},
		{http.MethodPut, http.StatusOK},
		{http.MethodDelete, http.StatusOK},
	}

	router := setupRouter(Health)

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, "/healthz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			// All methods should have Cache-Control header
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		})
	}
}

func TestNewHealth_AllChecksPass(t *testing.T) {
	t.Parallel()

	h := NewHealth(map[string]Check{
		"redis": func(ctx context.Context) error { return nil },
		"db":    func(ctx context.Context) error { return nil },
	})
	w := httptest.NewRecorder()
	setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"redis":"ok","db":"ok"}}`, w.Body.String())
}

func TestNewHealth_FailingCheck(t *testing.T) {
	t.Parallel()

	h := NewHealth(map[string]Check{
		"redis": func(ctx context.Context) error { return errors.New("connection refused") },
		"db":    func(ctx context.Context) error { return nil },
	})

	t.Run("GET", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var body struct {
			Status string            `json:"status"`
			Checks map[string]string `json:"checks"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "degraded", body.Status)
		assert.Equal(t, "connection refused", body.Checks["redis"])
		assert.Equal(t, "ok", body.Checks["db"])
	})

	t.Run("HEAD", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Zero(t, w.Body.Len())
	})

	t.Run("OPTIONS skips checks", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/healthz", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestNewHealth_CheckReceivesDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	h := NewHealth(map[string]Check{
		"db": func(ctx context.Context) error {
			_, hasDeadline = ctx.Deadline()
			return nil
		},
	})
	setupRouter(h).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.True(t, hasDeadline)
}
