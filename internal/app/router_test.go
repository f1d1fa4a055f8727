package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vovarama1992/bfhl-gateway/internal/bfhl"
	"github.com/Vovarama1992/bfhl-gateway/internal/metrics"
)

func newTestHandler(t *testing.T) (http.Handler, *metrics.Recorder) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := metrics.New()
	svc := bfhl.NewService(bfhl.NewRegistry(nil), rec, logger)
	return NewRouter(nil, bfhl.NewHandler(svc, "ops@example.edu", logger), rec), rec
}

func TestRouterServesBFHLAndMetrics(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bfhl", strings.NewReader(`{"hcf": [12, 18]}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"is_success": true, "official_email": "ops@example.edu", "data": 6}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `bfhl_requests_total{operation="hcf",outcome="success"} 1`)
}

func TestRouterCORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/bfhl", nil)
	req.Header.Set("Origin", "https://frontend.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterRecoversPanics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewRouter(nil, bfhl.NewHandler(panicService{}, "ops@example.edu", logger), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bfhl", strings.NewReader(`{"prime": [2]}`)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type panicService struct{}

func (panicService) Dispatch(_ context.Context, _ map[string]any) bfhl.Result {
	panic("boom")
}
