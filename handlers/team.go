package handlers

import (
	"fmt"
	"net/http"

	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/services"
)

// TeamHandler, ekip endpoint'leri. Team service hata döndürmez;
// backend çökse bile liste boş gelir.
type TeamHandler struct {
	teamService services.TeamService
}

// NewTeamHandler, constructor.
func NewTeamHandler(teamService services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List godoc
// GET /api/team
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	pkg.JSON(w, http.StatusOK, h.teamService.List(r.Context()))
}

// Get godoc
// GET /api/team/{id}
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	member := h.teamService.Get(r.Context(), id)
	if member == nil {
		pkg.Error(w, fmt.Errorf("%w: team member %d", pkg.ErrNotFound, id))
		return
	}

	pkg.JSON(w, http.StatusOK, member)
}
