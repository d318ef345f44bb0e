// Package mock provides a repository.Store test double whose every call
// fails with a configured error.
package mock

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/garnizeh/watchrepair/pkg/models"
	"github.com/garnizeh/watchrepair/pkg/repository"
)

var ErrUnavailable = errors.New("store unavailable")

var _ repository.Store = (*Store)(nil)

// Store fails every operation with Err (ErrUnavailable when nil) and counts
// the calls it received.
type Store struct {
	Err   error
	calls atomic.Int64
}

func NewFailing(err error) *Store {
	return &Store{Err: err}
}

// Calls reports how many store operations were attempted.
func (m *Store) Calls() int64 { return m.calls.Load() }

func (m *Store) fail() error {
	m.calls.Add(1)
	if m.Err != nil {
		return m.Err
	}
	return ErrUnavailable
}

func (m *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return nil, m.fail()
}

func (m *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, m.fail()
}

func (m *Store) CreateUser(ctx context.Context, u *models.InsertUser) (*models.User, error) {
	return nil, m.fail()
}

func (m *Store) ListWatchmakers(ctx context.Context) ([]models.Watchmaker, error) {
	return nil, m.fail()
}

func (m *Store) GetWatchmaker(ctx context.Context, id int64) (*models.Watchmaker, error) {
	return nil, m.fail()
}

func (m *Store) ListWatchmakersBySpecialization(ctx context.Context, specialization string) ([]models.Watchmaker, error) {
	return nil, m.fail()
}

func (m *Store) CreateWatchmaker(ctx context.Context, w *models.InsertWatchmaker) (*models.Watchmaker, error) {
	return nil, m.fail()
}

func (m *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	return nil, m.fail()
}

func (m *Store) GetService(ctx context.Context, id int64) (*models.Service, error) {
	return nil, m.fail()
}

func (m *Store) ListServicesByCategory(ctx context.Context, category string) ([]models.Service, error) {
	return nil, m.fail()
}

func (m *Store) CreateService(ctx context.Context, s *models.InsertService) (*models.Service, error) {
	return nil, m.fail()
}

func (m *Store) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	return nil, m.fail()
}

func (m *Store) GetQuote(ctx context.Context, id int64) (*models.Quote, error) {
	return nil, m.fail()
}

func (m *Store) CreateQuote(ctx context.Context, q *models.InsertQuote) (*models.Quote, error) {
	return nil, m.fail()
}

func (m *Store) UpdateQuoteStatus(ctx context.Context, id int64, status string) (*models.Quote, error) {
	return nil, m.fail()
}

func (m *Store) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return nil, m.fail()
}

func (m *Store) GetContact(ctx context.Context, id int64) (*models.Contact, error) {
	return nil, m.fail()
}

func (m *Store) CreateContact(ctx context.Context, c *models.InsertContact) (*models.Contact, error) {
	return nil, m.fail()
}

func (m *Store) UpdateContactStatus(ctx context.Context, id int64, status string) (*models.Contact, error) {
	return nil, m.fail()
}

func (m *Store) ListGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	return nil, m.fail()
}

func (m *Store) ListFeaturedGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	return nil, m.fail()
}

func (m *Store) GetGalleryItem(ctx context.Context, id int64) (*models.GalleryItem, error) {
	return nil, m.fail()
}

func (m *Store) CreateGalleryItem(ctx context.Context, g *models.InsertGalleryItem) (*models.GalleryItem, error) {
	return nil, m.fail()
}
