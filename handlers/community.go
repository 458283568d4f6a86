package handlers

import (
	"net/http"

	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/services"
)

// CommunityHandler, topluluk üyeleri ve öne çıkan yorumlar.
type CommunityHandler struct {
	communityService services.CommunityService
}

// NewCommunityHandler, constructor.
func NewCommunityHandler(communityService services.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// Members godoc
// GET /api/community/members
func (h *CommunityHandler) Members(w http.ResponseWriter, r *http.Request) {
	members, err := h.communityService.ListMembers(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, members)
}

// Testimonials godoc
// GET /api/community/testimonials
func (h *CommunityHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	featured, err := h.communityService.ListFeaturedTestimonials(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, featured)
}
