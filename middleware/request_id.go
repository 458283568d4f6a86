// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Go'da middleware bir fonksiyondur:
//
//	func(next http.Handler) http.Handler
//
// Middleware kendi işini yapar, sonra next'i çağırır.
// Hata varsa next çağrılmaz → request burada durur.
//
// Zincir (dıştan içe): RequestID → AccessLog → Recover → CORS → mux → FormRateLimit → Handler
package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/djangocampus/campus/pkg/apiclient"
)

// RequestIDHeader, hem gelen hem giden isteklerde kullanılan header.
const RequestIDHeader = "X-Request-ID"

// RequestID, her isteğe bir id atar. Client geçerli bir UUID gönderdiyse o kullanılır.
// Id response header'ına yazılır ve context'e konur; apiclient bu id'yi
// backend isteklerine de ekler, böylece loglar uçtan uca eşleşir.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)

		ctx := apiclient.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
