package api

import (
	"net/http"

	"github.com/garnizeh/watchrepair/pkg/models"
	"github.com/garnizeh/watchrepair/pkg/repository"
)

// CatalogHandler serves the read-only catalog: watchmakers, services and
// the gallery.
type CatalogHandler struct {
	watchmakers repository.WatchmakerRepo
	services    repository.ServiceRepo
	gallery     repository.GalleryRepo
}

func NewCatalogHandler(wr repository.WatchmakerRepo, sr repository.ServiceRepo, gr repository.GalleryRepo) *CatalogHandler {
	return &CatalogHandler{watchmakers: wr, services: sr, gallery: gr}
}

// ListWatchmakers returns active watchmakers, narrowed by ?specialization=.
func (h *CatalogHandler) ListWatchmakers(w http.ResponseWriter, r *http.Request) {
	var (
		items []models.Watchmaker
		err   error
	)
	if spec := r.URL.Query().Get("specialization"); spec != "" {
		items, err = h.watchmakers.ListWatchmakersBySpecialization(r.Context(), spec)
	} else {
		items, err = h.watchmakers.ListWatchmakers(r.Context())
	}
	if err != nil {
		writeFailure(w, r, "Failed to fetch watchmakers", err)
		return
	}
	writeJSON(w, listOrEmpty(items), http.StatusOK)
}

func (h *CatalogHandler) GetWatchmaker(w http.ResponseWriter, r *http.Request) {
	serveRecord(w, r, func(id int64) (*models.Watchmaker, error) {
		return h.watchmakers.GetWatchmaker(r.Context(), id)
	}, "Watchmaker not found", "Failed to fetch watchmaker")
}

// ListServices returns every service, or those in ?category= exactly.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	var (
		items []models.Service
		err   error
	)
	if cat := r.URL.Query().Get("category"); cat != "" {
		items, err = h.services.ListServicesByCategory(r.Context(), cat)
	} else {
		items, err = h.services.ListServices(r.Context())
	}
	if err != nil {
		writeFailure(w, r, "Failed to fetch services", err)
		return
	}
	writeJSON(w, listOrEmpty(items), http.StatusOK)
}

func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	serveRecord(w, r, func(id int64) (*models.Service, error) {
		return h.services.GetService(r.Context(), id)
	}, "Service not found", "Failed to fetch service")
}

// ListGallery returns the featured subset only for ?featured=true.
func (h *CatalogHandler) ListGallery(w http.ResponseWriter, r *http.Request) {
	var (
		items []models.GalleryItem
		err   error
	)
	if r.URL.Query().Get("featured") == "true" {
		items, err = h.gallery.ListFeaturedGalleryItems(r.Context())
	} else {
		items, err = h.gallery.ListGalleryItems(r.Context())
	}
	if err != nil {
		writeFailure(w, r, "Failed to fetch gallery items", err)
		return
	}
	writeJSON(w, listOrEmpty(items), http.StatusOK)
}

func (h *CatalogHandler) GetGalleryItem(w http.ResponseWriter, r *http.Request) {
	serveRecord(w, r, func(id int64) (*models.GalleryItem, error) {
		return h.gallery.GetGalleryItem(r.Context(), id)
	}, "Gallery item not found", "Failed to fetch gallery item")
}
