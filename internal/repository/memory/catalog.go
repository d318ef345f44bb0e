package memory

import (
	"context"
	"strings"

	"github.com/garnizeh/watchrepair/pkg/models"
)

func activeWatchmaker(w models.Watchmaker) bool { return w.IsActive }

func (s *Store) ListWatchmakers(ctx context.Context) ([]models.Watchmaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.watchmakers.list(activeWatchmaker), nil
}

// GetWatchmaker returns inactive watchmakers too.
func (s *Store) GetWatchmaker(ctx context.Context, id int64) (*models.Watchmaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.watchmakers.get(id), nil
}

func (s *Store) ListWatchmakersBySpecialization(ctx context.Context, specialization string) ([]models.Watchmaker, error) {
	term := strings.ToLower(specialization)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.watchmakers.list(func(w models.Watchmaker) bool {
		return w.IsActive && strings.Contains(strings.ToLower(w.Specialization), term)
	}), nil
}

func (s *Store) CreateWatchmaker(ctx context.Context, in *models.InsertWatchmaker) (*models.Watchmaker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := models.NewWatchmaker(s.watchmakers.allocate(), *in)
	s.watchmakers.put(w.ID, w)
	return &w, nil
}

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.services.list(nil), nil
}

func (s *Store) GetService(ctx context.Context, id int64) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.services.get(id), nil
}

func (s *Store) ListServicesByCategory(ctx context.Context, category string) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.services.list(func(sv models.Service) bool { return sv.Category == category }), nil
}

func (s *Store) CreateService(ctx context.Context, in *models.InsertService) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv := models.NewService(s.services.allocate(), *in)
	s.services.put(sv.ID, sv)
	return &sv, nil
}

func (s *Store) ListGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gallery.list(nil), nil
}

func (s *Store) ListFeaturedGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gallery.list(func(g models.GalleryItem) bool { return g.Featured }), nil
}

func (s *Store) GetGalleryItem(ctx context.Context, id int64) (*models.GalleryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gallery.get(id), nil
}

func (s *Store) CreateGalleryItem(ctx context.Context, in *models.InsertGalleryItem) (*models.GalleryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := models.NewGalleryItem(s.gallery.allocate(), *in)
	s.gallery.put(g.ID, g)
	return &g, nil
}
