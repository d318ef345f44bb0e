package repository

import (
	"context"
	"errors"

	"github.com/garnizeh/watchrepair/pkg/models"
)

// Repository interfaces for the watch-repair entities. These are the public
// contracts the HTTP layer depends on; concrete stores live under internal/.
//
// Lookups by id return (nil, nil) when the record does not exist.

// ErrUsernameTaken is returned by CreateUser when the username already exists.
var ErrUsernameTaken = errors.New("username already taken")

type UserRepo interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.InsertUser) (*models.User, error)
}

type WatchmakerRepo interface {
	// ListWatchmakers returns active watchmakers only.
	ListWatchmakers(ctx context.Context) ([]models.Watchmaker, error)
	GetWatchmaker(ctx context.Context, id int64) (*models.Watchmaker, error)
	// ListWatchmakersBySpecialization matches active watchmakers whose
	// specialization contains the term, case-insensitively.
	ListWatchmakersBySpecialization(ctx context.Context, specialization string) ([]models.Watchmaker, error)
	CreateWatchmaker(ctx context.Context, w *models.InsertWatchmaker) (*models.Watchmaker, error)
}

type ServiceRepo interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id int64) (*models.Service, error)
	ListServicesByCategory(ctx context.Context, category string) ([]models.Service, error)
	CreateService(ctx context.Context, s *models.InsertService) (*models.Service, error)
}

type QuoteRepo interface {
	ListQuotes(ctx context.Context) ([]models.Quote, error)
	GetQuote(ctx context.Context, id int64) (*models.Quote, error)
	CreateQuote(ctx context.Context, q *models.InsertQuote) (*models.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id int64, status string) (*models.Quote, error)
}

type ContactRepo interface {
	ListContacts(ctx context.Context) ([]models.Contact, error)
	GetContact(ctx context.Context, id int64) (*models.Contact, error)
	CreateContact(ctx context.Context, c *models.InsertContact) (*models.Contact, error)
	UpdateContactStatus(ctx context.Context, id int64, status string) (*models.Contact, error)
}

type GalleryRepo interface {
	ListGalleryItems(ctx context.Context) ([]models.GalleryItem, error)
	ListFeaturedGalleryItems(ctx context.Context) ([]models.GalleryItem, error)
	GetGalleryItem(ctx context.Context, id int64) (*models.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, g *models.InsertGalleryItem) (*models.GalleryItem, error)
}

// CatalogWriter is the subset used to load the static catalog.
type CatalogWriter interface {
	CreateWatchmaker(ctx context.Context, w *models.InsertWatchmaker) (*models.Watchmaker, error)
	CreateService(ctx context.Context, s *models.InsertService) (*models.Service, error)
	CreateGalleryItem(ctx context.Context, g *models.InsertGalleryItem) (*models.GalleryItem, error)
}

// Store aggregates every entity repository.
type Store interface {
	UserRepo
	WatchmakerRepo
	ServiceRepo
	QuoteRepo
	ContactRepo
	GalleryRepo
}
