// Package memory implements the repository contracts on process memory: one
// keyed table per entity kind, each with its own id counter.
package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/garnizeh/watchrepair/internal/seed"
	"github.com/garnizeh/watchrepair/pkg/models"
	"github.com/garnizeh/watchrepair/pkg/repository"
)

// table keeps records of one kind in insertion order. Ids start at 1 and are
// never reused.
type table[T any] struct {
	next  int64
	rows  map[int64]T
	order []int64
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	return &table[T]{next: 1, rows: make(map[int64]T), clone: clone}
}

func (t *table[T]) allocate() int64 {
	id := t.next
	t.next++
	return id
}

func (t *table[T]) put(id int64, v T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = t.clone(v)
}

func (t *table[T]) get(id int64) *T {
	v, ok := t.rows[id]
	if !ok {
		return nil
	}
	out := t.clone(v)
	return &out
}

func (t *table[T]) list(keep func(T) bool) []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		v := t.rows[id]
		if keep != nil && !keep(v) {
			continue
		}
		out = append(out, t.clone(v))
	}
	return out
}

// update applies fn to the stored record and returns a copy of the result,
// or nil if id is unknown.
func (t *table[T]) update(id int64, fn func(*T)) *T {
	v, ok := t.rows[id]
	if !ok {
		return nil
	}
	fn(&v)
	t.rows[id] = v
	out := t.clone(v)
	return &out
}

// Store is safe for concurrent use. None of its methods return a non-nil
// error except CreateUser on a duplicate username.
type Store struct {
	mu          sync.RWMutex
	users       *table[models.User]
	watchmakers *table[models.Watchmaker]
	services    *table[models.Service]
	quotes      *table[models.Quote]
	contacts    *table[models.Contact]
	gallery     *table[models.GalleryItem]
	now         func() time.Time
	logger      *slog.Logger
}

var _ repository.Store = (*Store)(nil)

// NewEmpty returns a store with no records.
func NewEmpty(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		users:       newTable(models.User.Clone),
		watchmakers: newTable(models.Watchmaker.Clone),
		services:    newTable(models.Service.Clone),
		quotes:      newTable(models.Quote.Clone),
		contacts:    newTable(models.Contact.Clone),
		gallery:     newTable(models.GalleryItem.Clone),
		now:         func() time.Time { return time.Now().UTC() },
		logger:      logger,
	}
}

// New returns a store populated with the static catalog.
func New(logger *slog.Logger) *Store {
	s := NewEmpty(logger)
	if err := seed.Load(context.Background(), s); err != nil {
		s.logger.Error("seed memory store", slog.Any("err", err))
	}
	return s
}

// SetClock overrides the time source used for createdAt.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
