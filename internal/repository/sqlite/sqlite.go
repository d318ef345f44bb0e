package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/garnizeh/watchrepair/internal/db"
	"github.com/garnizeh/watchrepair/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
	now    func() time.Time
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.Store = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteRepo{conn: conn, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// SetClock overrides the time source used for createdAt.
func (r *SQLiteRepo) SetClock(now func() time.Time) {
	r.now = now
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func nullString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// queryList runs query and scans each row with scan. The result is never nil.
func queryList[T any](ctx context.Context, r *SQLiteRepo, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// queryOne returns nil, nil when the query yields no row.
func queryOne[T any](ctx context.Context, r *SQLiteRepo, scan func(scanner) (T, error), query string, args ...any) (*T, error) {
	v, err := scan(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func insertID(res sql.Result, err error, kind string) (int64, error) {
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", kind, err)
	}
	return res.LastInsertId()
}
