package sqlite

import (
	"context"
	"fmt"

	"github.com/garnizeh/watchrepair/pkg/models"
	"github.com/garnizeh/watchrepair/pkg/repository"
)

const userColumns = `id, username, password`

func scanUser(s scanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Username, &u.Password)
	return u, err
}

func (r *SQLiteRepo) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return queryOne(ctx, r, scanUser, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r *SQLiteRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return queryOne(ctx, r, scanUser, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
}

func (r *SQLiteRepo) CreateUser(ctx context.Context, in *models.InsertUser) (*models.User, error) {
	if in == nil {
		return nil, fmt.Errorf("user is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO users (username, password) VALUES (?, ?) ON CONFLICT(username) DO NOTHING`, in.Username, in.Password)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	} else if n == 0 {
		return nil, repository.ErrUsernameTaken
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.User{ID: id, Username: in.Username, Password: in.Password}, nil
}
