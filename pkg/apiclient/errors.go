package apiclient

import (
	"fmt"
	"net/http"

	"github.com/djangocampus/campus/pkg"
)

var (
	// ErrTransport, backend'e hiç ulaşılamadığında (DNS, connection refused, timeout,
	// context iptali) döner. HTTP error'lardan ayırt edilebilsin diye ayrı tutulur.
	ErrTransport = fmt.Errorf("%w: transport failure", pkg.ErrUpstream)

	// ErrInvalidResponse, 2xx yanıtın gövdesi beklenen şekle uymadığında döner
	// (JSON değil, zorunlu alan eksik, envelope'ta data yok vb.).
	ErrInvalidResponse = fmt.Errorf("%w: invalid response", pkg.ErrUpstream)
)

// APIError, backend'in 2xx dışı bir status ile yanıt verdiği durum.
// Mesaj formatı frontend ile aynıdır: "API Error: <code> <status text> - <body>".
// Body her method için eklenir (GET/PUT/DELETE dahil).
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string // status text, ör: "Bad Request"
	Body       string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("API Error: %d %s", e.StatusCode, e.Status)
	if e.Body != "" {
		msg += " - " + e.Body
	}
	return msg
}

// Unwrap, errors.Is(err, pkg.ErrUpstream) için; HTTP hataları da upstream sınıfındadır.
func (e *APIError) Unwrap() error {
	return pkg.ErrUpstream
}

// HTTPStatus, pkg.StatusCoder implementasyonu.
// Backend'in 404'ü frontend'e 404 olarak yansır; geri kalan her şey 502 Bad Gateway.
func (e *APIError) HTTPStatus() int {
	if e.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// IsServerError, 5xx yanıtlar için true döner (retry kararı bunu kullanır).
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}
