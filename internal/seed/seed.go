// Package seed holds the fixed catalog the site ships with: the watchmaker
// profile, one service per category and the featured gallery entries.
package seed

import (
	"context"
	"fmt"

	"github.com/garnizeh/watchrepair/pkg/models"
	"github.com/garnizeh/watchrepair/pkg/repository"
)

const workshopWatchmaker = "Corbin Groenewald"

func ptr[T any](v T) *T { return &v }

func Watchmakers() []models.InsertWatchmaker {
	return []models.InsertWatchmaker{
		{
			Name:           "OUR WATCH REPAIRER",
			Email:          "EMAIL",
			Specialization: "Complicated Movements",
			Experience:     22,
			HourlyRate:     "225.00",
			Rating:         "5.0",
			ReviewCount:    ptr(203),
			Availability:   "8 weeks",
			Certifications: []string{"CERTS"},
			Bio:            "BIO",
			ImageURL:       "",
			IsActive:       ptr(true),
		},
	}
}

func Services() []models.InsertService {
	return []models.InsertService{
		{
			Name:              "Complete Movement Service",
			Description:       "Full disassembly, cleaning, lubrication, and reassembly of mechanical movements",
			Category:          "manual",
			BasePrice:         "DISCUSS",
			EstimatedDuration: "2-3 weeks",
			ImageURL:          "/watch5.jpeg",
		},
		{
			Name:              "Automatic Watch Calibration",
			Description:       "Precision adjustment and regulation of automatic watch movements",
			Category:          "automatic",
			BasePrice:         "DISCUSS",
			EstimatedDuration: "1-2 weeks",
			ImageURL:          "/watch4.jpeg",
		},
		{
			Name:              "Vintage Restoration",
			Description:       "Specialized restoration of vintage and antique timepieces",
			Category:          "vintage",
			BasePrice:         "DISCUSS",
			EstimatedDuration: "4-6 weeks",
			ImageURL:          "/watch6.jpg",
		},
		{
			Name:              "Luxury Complication Repair",
			Description:       "Expert repair of complex complications including perpetual calendars, minute repeaters",
			Category:          "luxury",
			BasePrice:         "DISCUSS",
			EstimatedDuration: "6-12 weeks",
			ImageURL:          "/watch3.jpeg",
		},
	}
}

func GalleryItems() []models.InsertGalleryItem {
	return []models.InsertGalleryItem{
		{
			Title:          "WATCH REPAIR ONE",
			Description:    "Complete restoration of a vintage Omega Speedmaster including movement service and case refinishing",
			WatchmakerName: workshopWatchmaker,
			ServiceType:    "Vintage Restoration",
			CompletionTime: "5 weeks",
			Featured:       ptr(true),
		},
		{
			Title:          "WATCH REPAIR TWO",
			Description:    "Precision service of a Rolex Submariner 3135 movement with new crown and crystal",
			WatchmakerName: workshopWatchmaker,
			ServiceType:    "Automatic Service",
			CompletionTime: "6 weeks",
			Featured:       ptr(true),
		},
		{
			Title:          "WATCH REPAIR 3",
			Description:    "Expert repair of annual calendar complication on a Patek Philippe 5396",
			WatchmakerName: workshopWatchmaker,
			ServiceType:    "",
			CompletionTime: "10 weeks",
			Featured:       ptr(true),
		},
	}
}

// Load writes the full catalog into w, in a fixed order.
func Load(ctx context.Context, w repository.CatalogWriter) error {
	for _, in := range Watchmakers() {
		if _, err := w.CreateWatchmaker(ctx, &in); err != nil {
			return fmt.Errorf("seed watchmaker %q: %w", in.Name, err)
		}
	}
	for _, in := range Services() {
		if _, err := w.CreateService(ctx, &in); err != nil {
			return fmt.Errorf("seed service %q: %w", in.Name, err)
		}
	}
	for _, in := range GalleryItems() {
		if _, err := w.CreateGalleryItem(ctx, &in); err != nil {
			return fmt.Errorf("seed gallery item %q: %w", in.Title, err)
		}
	}
	return nil
}

// LoadIfEmpty seeds s only when it holds no catalog records yet, so a durable
// store is seeded once rather than on every start.
func LoadIfEmpty(ctx context.Context, s repository.Store) (bool, error) {
	services, err := s.ListServices(ctx)
	if err != nil {
		return false, fmt.Errorf("check services: %w", err)
	}
	gallery, err := s.ListGalleryItems(ctx)
	if err != nil {
		return false, fmt.Errorf("check gallery: %w", err)
	}
	if len(services) > 0 || len(gallery) > 0 {
		return false, nil
	}
	if err := Load(ctx, s); err != nil {
		return false, err
	}
	return true, nil
}
