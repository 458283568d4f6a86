package middleware

import (
	"net/http"
	"time"

	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/pkg/apiclient"
	"github.com/djangocampus/campus/pkg/logger"
	"github.com/djangocampus/campus/pkg/ratelimit"
)

// statusRecorder, handler'ın yazdığı status code'u yakalar.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// Unwrap, http.ResponseController'ın alttaki writer'a ulaşması için.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// AccessLog, her isteği tek satır structured log olarak yazar.
// 5xx → Error, 4xx → Warn, diğerleri → Info.
func AccessLog(lggr logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}

			fields := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", rec.bytes,
				"duration", time.Since(start),
				"ip", ratelimit.ClientIP(r, false),
				"request_id", apiclient.RequestIDFrom(r.Context()),
			}

			switch {
			case status >= http.StatusInternalServerError:
				lggr.Errorw("http request", fields...)
			case status >= http.StatusBadRequest:
				lggr.Warnw("http request", fields...)
			default:
				lggr.Infow("http request", fields...)
			}
		})
	}
}

// Recover, handler panic'lerini yakalar ve 500 döner; server ayakta kalır.
func Recover(lggr logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					lggr.Errorw("panic in handler",
						"panic", rec,
						"path", r.URL.Path,
						"request_id", apiclient.RequestIDFrom(r.Context()),
					)
					pkg.ErrorWithMessage(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
