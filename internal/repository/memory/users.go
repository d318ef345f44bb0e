package memory

import (
	"context"

	"github.com/garnizeh/watchrepair/pkg/models"
	"github.com/garnizeh/watchrepair/pkg/repository"
)

func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.get(id), nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(username), nil
}

// findUser is a linear scan; the table is tiny and has no secondary index.
func (s *Store) findUser(username string) *models.User {
	for _, u := range s.users.list(nil) {
		if u.Username == username {
			return &u
		}
	}
	return nil
}

func (s *Store) CreateUser(ctx context.Context, in *models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findUser(in.Username) != nil {
		return nil, repository.ErrUsernameTaken
	}
	u := models.User{ID: s.users.allocate(), Username: in.Username, Password: in.Password}
	s.users.put(u.ID, u)
	return &u, nil
}
