package memory

import (
	"context"

	"github.com/garnizeh/watchrepair/pkg/models"
)

func (s *Store) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quotes.list(nil), nil
}

func (s *Store) GetQuote(ctx context.Context, id int64) (*models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quotes.get(id), nil
}

func (s *Store) CreateQuote(ctx context.Context, in *models.InsertQuote) (*models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := models.NewQuote(s.quotes.allocate(), *in, s.now())
	s.quotes.put(q.ID, q)
	return &q, nil
}

// UpdateQuoteStatus accepts any status string.
func (s *Store) UpdateQuoteStatus(ctx context.Context, id int64, status string) (*models.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quotes.update(id, func(q *models.Quote) { q.Status = status }), nil
}

func (s *Store) ListContacts(ctx context.Context) ([]models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contacts.list(nil), nil
}

func (s *Store) GetContact(ctx context.Context, id int64) (*models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contacts.get(id), nil
}

func (s *Store) CreateContact(ctx context.Context, in *models.InsertContact) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.NewContact(s.contacts.allocate(), *in, s.now())
	s.contacts.put(c.ID, c)
	return &c, nil
}

func (s *Store) UpdateContactStatus(ctx context.Context, id int64, status string) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contacts.update(id, func(c *models.Contact) { c.Status = status }), nil
}
