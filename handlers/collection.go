package handlers

import (
	"net/http"

	"github.com/djangocampus/campus/models"
	"github.com/djangocampus/campus/pkg"
	"github.com/djangocampus/campus/services"
)

// CollectionHandler, partners / contributors / supporters için ortak handler.
// Üçü de aynı sayfalı yanıtı döner ve is_active alanı taşır.
type CollectionHandler[T models.Activatable] struct {
	service services.CollectionService[T]
}

// NewCollectionHandler, constructor.
func NewCollectionHandler[T models.Activatable](service services.CollectionService[T]) *CollectionHandler[T] {
	return &CollectionHandler[T]{service: service}
}

// List godoc
// GET /api/{partners|contributors|supporters}
// Sayfayı olduğu gibi döner. ?active=true → results aktiflere göre filtrelenir
// ve count filtrelenmiş uzunluğa eşitlenir.
func (h *CollectionHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if queryBool(r, "active") {
		page.Results = models.FilterActive(page.Items())
		page.Count = len(page.Results)
	}

	pkg.JSON(w, http.StatusOK, page)
}

// Get godoc
// GET /api/{partners|contributors|supporters}/{id}
func (h *CollectionHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, item)
}
