package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/pkg/apiclient"
	"github.com/djangocampus/campus/pkg/logger"
	"github.com/djangocampus/campus/pkg/ratelimit"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = apiclient.RequestIDFrom(r.Context())
	}))

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		id := rec.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("keeps valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(RequestIDHeader, incoming)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
		assert.Equal(t, incoming, seen)
	})

	t.Run("replaces garbage id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(RequestIDHeader, "<script>")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.NotEqual(t, "<script>", rec.Header().Get(RequestIDHeader))
	})
}

func TestAccessLog(t *testing.T) {
	t.Parallel()

	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)

	h := AccessLog(lggr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.ErrorWithMessage(w, http.StatusBadGateway, "upstream down")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/workshops", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/workshops", fields["path"])
	assert.EqualValues(t, http.StatusBadGateway, fields["status"])
}

func TestAccessLog_ImplicitOK(t *testing.T) {
	t.Parallel()

	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)

	h := AccessLog(lggr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
}

func TestRecover(t *testing.T) {
	t.Parallel()

	h := Recover(logger.Test(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body pkg.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Success)
}

func TestFormRateLimit(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.NewFormRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Stop)

	var calls int
	h := NewFormRateLimitMiddleware(limiter, false).Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", nil)
		req.RemoteAddr = "10.1.1.1:4000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusCreated, send().Code)
	assert.Equal(t, http.StatusCreated, send().Code)

	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, 2, calls)
}

func TestFormRateLimit_ForwardedHeaders(t *testing.T) {
	t.Parallel()

	newHandler := func(trustProxy bool) http.Handler {
		limiter := ratelimit.NewFormRateLimiter(2, time.Minute)
		t.Cleanup(limiter.Stop)

		return NewFormRateLimitMiddleware(limiter, trustProxy).Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
	}

	// Aynı peer'den her istekte farklı X-Forwarded-For.
	sendRotating := func(h http.Handler) (accepted int) {
		for i := 0; i < 50; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", nil)
			req.RemoteAddr = "10.1.1.1:4000"
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
			req.Header.Set("X-Real-IP", fmt.Sprintf("203.0.113.%d", i))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code == http.StatusCreated {
				accepted++
			}
		}
		return accepted
	}

	t.Run("ignored by default", func(t *testing.T) {
		assert.Equal(t, 2, sendRotating(newHandler(false)))
	})

	t.Run("honored behind proxy", func(t *testing.T) {
		assert.Equal(t, 50, sendRotating(newHandler(true)))
	})
}

func TestFormRateLimit_NilLimiter(t *testing.T) {
	t.Parallel()

	h := NewFormRateLimitMiddleware(nil, false).Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
