package handlers

import (
	"net/http"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/services"
)

// PartnershipHandler, "partner olun" formu.
type PartnershipHandler struct {
	partnershipService services.PartnershipService
}

// NewPartnershipHandler, constructor.
func NewPartnershipHandler(partnershipService services.PartnershipService) *PartnershipHandler {
	return &PartnershipHandler{partnershipService: partnershipService}
}

// Inquiry godoc
// POST /api/partners/inquiry
// Email yapılandırılmamışsa 503.
func (h *PartnershipHandler) Inquiry(w http.ResponseWriter, r *http.Request) {
	var req models.PartnerInquiry
	if err := decodeBody(w, r, &req); err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.partnershipService.SendInquiry(r.Context(), &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusAccepted, map[string]string{"message": "Thanks! We'll be in touch soon."})
}
