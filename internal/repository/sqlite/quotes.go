package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/garnizeh/watchrepair/pkg/models"
)

const quoteColumns = `id, name, email, phone, watch_brand, watch_model, watch_type, issue_description, preferred_service, urgency, budget, created_at, status`

func scanQuote(s scanner) (models.Quote, error) {
	var (
		q                               models.Quote
		phone, model, preferred, budget sql.NullString
		created                         int64
	)
	err := s.Scan(&q.ID, &q.Name, &q.Email, &phone, &q.WatchBrand, &model, &q.WatchType, &q.IssueDescription, &preferred, &q.Urgency, &budget, &created, &q.Status)
	q.Phone = stringPtr(phone)
	q.WatchModel = stringPtr(model)
	q.PreferredService = stringPtr(preferred)
	q.Budget = stringPtr(budget)
	q.CreatedAt = time.UnixMilli(created).UTC()
	return q, err
}

func (r *SQLiteRepo) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	return queryList(ctx, r, scanQuote, `SELECT `+quoteColumns+` FROM quotes ORDER BY id`)
}

func (r *SQLiteRepo) GetQuote(ctx context.Context, id int64) (*models.Quote, error) {
	return queryOne(ctx, r, scanQuote, `SELECT `+quoteColumns+` FROM quotes WHERE id = ?`, id)
}

func (r *SQLiteRepo) CreateQuote(ctx context.Context, in *models.InsertQuote) (*models.Quote, error) {
	if in == nil {
		return nil, fmt.Errorf("quote is nil")
	}
	// createdAt is stored with millisecond precision
	q := models.NewQuote(0, *in, r.now().Truncate(time.Millisecond))

	res, err := r.conn.Exec(ctx, `INSERT INTO quotes (name, email, phone, watch_brand, watch_model, watch_type, issue_description, preferred_service, urgency, budget, created_at, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.Name, q.Email, nullString(q.Phone), q.WatchBrand, nullString(q.WatchModel), q.WatchType, q.IssueDescription, nullString(q.PreferredService), q.Urgency, nullString(q.Budget), q.CreatedAt.UnixMilli(), q.Status)
	id, err := insertID(res, err, "quote")
	if err != nil {
		return nil, err
	}
	q.ID = id

	return &q, nil
}

func (r *SQLiteRepo) UpdateQuoteStatus(ctx context.Context, id int64, status string) (*models.Quote, error) {
	res, err := r.conn.Exec(ctx, `UPDATE quotes SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return nil, fmt.Errorf("update quote status: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, nil
	}

	return r.GetQuote(ctx, id)
}
