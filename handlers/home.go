package handlers

import (
	"net/http"

	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/services"
)

// HomeHandler, ana sayfa özeti.
type HomeHandler struct {
	homeService services.HomeService
}

// NewHomeHandler, constructor.
func NewHomeHandler(homeService services.HomeService) *HomeHandler {
	return &HomeHandler{homeService: homeService}
}

// Overview godoc
// GET /api/home
// Parçalardan biri çökse bile 200 döner; o parça boş gelir.
func (h *HomeHandler) Overview(w http.ResponseWriter, r *http.Request) {
	pkg.JSON(w, http.StatusOK, h.homeService.Overview(r.Context()))
}

// HealthHandler, liveness + upstream adresi.
type HealthHandler struct {
	apiURL string
}

// NewHealthHandler, constructor.
func NewHealthHandler(apiURL string) *HealthHandler {
	return &HealthHandler{apiURL: apiURL}
}

// Health godoc
// GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	pkg.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "campus",
		"api_url": h.apiURL,
	})
}
