package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/pkg/ratelimit"
)

// FormRateLimitMiddleware, form POST endpoint'lerini IP bazlı sınırlar.
type FormRateLimitMiddleware struct {
	limiter    *ratelimit.FormRateLimiter
	trustProxy bool
}

// NewFormRateLimitMiddleware, constructor. limiter nil ise limit uygulanmaz.
// trustProxy false ise anahtar her zaman bağlantının RemoteAddr'ıdır.
func NewFormRateLimitMiddleware(limiter *ratelimit.FormRateLimiter, trustProxy bool) *FormRateLimitMiddleware {
	return &FormRateLimitMiddleware{limiter: limiter, trustProxy: trustProxy}
}

// Require, limit aşıldığında 429 + Retry-After döner, next çağrılmaz.
func (m *FormRateLimitMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ip := ratelimit.ClientIP(r, m.trustProxy)
		if !m.limiter.Allow(ip) {
			retryAfter := m.limiter.RetryAfterSeconds(ip)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
				fmt.Sprintf("too many submissions, please try again in %s",
					ratelimit.FormatRetryMessage(retryAfter)))
			return
		}

		next.ServeHTTP(w, r)
	})
}
