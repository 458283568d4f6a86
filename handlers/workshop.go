package handlers

import (
	"fmt"
	"net/http"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/services"
)

// WorkshopHandler, workshop endpoint'lerini yöneten struct.
type WorkshopHandler struct {
	workshopService services.WorkshopService
}

// NewWorkshopHandler, constructor.
func NewWorkshopHandler(workshopService services.WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{workshopService: workshopService}
}

// List godoc
// GET /api/workshops
// Tüm workshop'ları döner. ?upcoming=true → sadece bitmemiş olanlar.
func (h *WorkshopHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		workshops []models.Workshop
		err       error
	)

	if queryBool(r, "upcoming") {
		workshops, err = h.workshopService.ListUpcoming(r.Context())
	} else {
		workshops, err = h.workshopService.List(r.Context())
	}
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, workshops)
}

// Get godoc
// GET /api/workshops/{id}
func (h *WorkshopHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	workshop, err := h.workshopService.Get(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, workshop)
}

// Register godoc
// POST /api/workshops/register
// Kayıt formunu doğrular ve backend'e iletir.
func (h *WorkshopHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.Registration
	if err := decodeBody(w, r, &req); err != nil {
		pkg.Error(w, err)
		return
	}

	created, err := h.workshopService.Register(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, created)
}

// CheckRegistration godoc
// GET /api/workshops/{id}/registration?email=
// Backend'e ulaşılamazsa {"is_registered": false} döner.
func (h *WorkshopHandler) CheckRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	email := r.URL.Query().Get("email")
	if !models.IsValidEmail(email) {
		pkg.Error(w, fmt.Errorf("%w: a valid email query parameter is required", pkg.ErrBadRequest))
		return
	}

	pkg.JSON(w, http.StatusOK, models.RegistrationStatus{
		IsRegistered: h.workshopService.CheckRegistration(r.Context(), id, email),
	})
}
