package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/garnizeh/watchrepair/pkg/models"
)

const contactColumns = `id, name, email, subject, message, created_at, status`

func scanContact(s scanner) (models.Contact, error) {
	var (
		c       models.Contact
		created int64
	)
	err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &created, &c.Status)
	c.CreatedAt = time.UnixMilli(created).UTC()
	return c, err
}

func (r *SQLiteRepo) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return queryList(ctx, r, scanContact, `SELECT `+contactColumns+` FROM contacts ORDER BY id`)
}

func (r *SQLiteRepo) GetContact(ctx context.Context, id int64) (*models.Contact, error) {
	return queryOne(ctx, r, scanContact, `SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id)
}

func (r *SQLiteRepo) CreateContact(ctx context.Context, in *models.InsertContact) (*models.Contact, error) {
	if in == nil {
		return nil, fmt.Errorf("contact is nil")
	}
	c := models.NewContact(0, *in, r.now().Truncate(time.Millisecond))

	res, err := r.conn.Exec(ctx, `INSERT INTO contacts (name, email, subject, message, created_at, status) VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name, c.Email, c.Subject, c.Message, c.CreatedAt.UnixMilli(), c.Status)
	id, err := insertID(res, err, "contact")
	if err != nil {
		return nil, err
	}
	c.ID = id

	return &c, nil
}

func (r *SQLiteRepo) UpdateContactStatus(ctx context.Context, id int64, status string) (*models.Contact, error) {
	res, err := r.conn.Exec(ctx, `UPDATE contacts SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, nil
	}

	return r.GetContact(ctx, id)
}
