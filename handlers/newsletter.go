package handlers

import (
	"net/http"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/services"
)

// NewsletterHandler, bülten abonelik endpoint'leri.
type NewsletterHandler struct {
	newsletterService services.NewsletterService
}

// NewNewsletterHandler, constructor.
func NewNewsletterHandler(newsletterService services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// Subscribe godoc
// POST /api/newsletter/subscribe
// Zaten aboneyse 409 + bilgilendirici mesaj (DuplicateSubscriptionError kendi status'unu taşır).
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req models.NewsletterSubscription
	if err := decodeBody(w, r, &req); err != nil {
		pkg.Error(w, err)
		return
	}

	created, err := h.newsletterService.Subscribe(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, created)
}

// Unsubscribe godoc
// POST /api/newsletter/unsubscribe
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req models.UnsubscribeRequest
	if err := decodeBody(w, r, &req); err != nil {
		pkg.Error(w, err)
		return
	}

	result, err := h.newsletterService.Unsubscribe(r.Context(), req.Email)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, result)
}
