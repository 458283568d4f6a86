package main

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djangocampus/campus/config"
	"github.com/djangocampus/campus/middleware"
	"github.com/djangocampus/campus/pkg/logger"
)

func newTestServer(t *testing.T, formLimit int) http.Handler {
	t.Helper()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/contributors/", "/api/supporters/":
			_, _ = w.Write([]byte(`{"count":0,"results":[]}`))
		case "/api/subscribers/unsubscribe/":
			_, _ = w.Write([]byte(`{"message":"ok"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(backend.Close)

	cfg := &config.Config{
		API:       config.APIConfig{BaseURL: backend.URL + "/api", Timeout: 5 * time.Second, RetryAttempts: 1},
		RateLimit: config.RateLimitConfig{FormRequests: formLimit, Window: time.Minute},
	}

	lggr := logger.Test(t)
	api, err := newAPIClient(cfg, lggr)
	require.NoError(t, err)

	svcs, limiters := initServices(api, cfg, lggr)
	t.Cleanup(limiters.Form.Stop)

	mux := http.NewServeMux()
	initRoutes(mux, initHandlers(svcs, cfg), limiters)

	return middleware.RequestID(middleware.AccessLog(lggr)(mux))
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, 10)

	tests := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/contributors", http.StatusOK},
		{http.MethodGet, "/api/supporters?active=true", http.StatusOK},
		{http.MethodGet, "/api/team", http.StatusOK},
		{http.MethodGet, "/api/home", http.StatusOK},
		{http.MethodGet, "/api/nope", http.StatusNotFound},
		{http.MethodDelete, "/api/workshops/1", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
		assert.Equal(t, tt.want, rec.Code, "%s %s", tt.method, tt.target)
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	}
}

func TestRoutes_FormRateLimit(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, 2)

	// TRUST_PROXY_HEADERS kapalıyken değişen X-Forwarded-For limiti atlatamaz.
	var n int
	post := func() int {
		n++
		req := httptest.NewRequest(http.MethodPost, "/api/newsletter/unsubscribe", strings.NewReader(`{"email":"a@b.com"}`))
		req.RemoteAddr = "203.0.113.9:5000"
		req.Header.Set("X-Forwarded-For", "198.51.100."+strconv.Itoa(n))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusOK, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	// GET'ler limitlenmez.
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPartnerInquiry_EmailDisabled(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, 10)

	req := httptest.NewRequest(http.MethodPost, "/api/partners/inquiry",
		strings.NewReader(`{"organization":"Acme","contact_name":"K","email":"k@acme.io","message":"hi"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
