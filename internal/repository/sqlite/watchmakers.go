package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/garnizeh/watchrepair/pkg/models"
)

const watchmakerColumns = `id, name, email, specialization, experience, hourly_rate, fixed_rate, rating, review_count, availability, certifications, bio, image_url, is_active`

func scanWatchmaker(s scanner) (models.Watchmaker, error) {
	var (
		w                         models.Watchmaker
		hourly, fixed, bio, image sql.NullString
		certs                     sql.NullString
	)
	if err := s.Scan(&w.ID, &w.Name, &w.Email, &w.Specialization, &w.Experience, &hourly, &fixed, &w.Rating, &w.ReviewCount, &w.Availability, &certs, &bio, &image, &w.IsActive); err != nil {
		return w, err
	}
	w.HourlyRate = stringPtr(hourly)
	w.FixedRate = stringPtr(fixed)
	w.Bio = stringPtr(bio)
	w.ImageURL = stringPtr(image)
	if certs.Valid {
		if err := json.Unmarshal([]byte(certs.String), &w.Certifications); err != nil {
			return w, fmt.Errorf("decode certifications for watchmaker %d: %w", w.ID, err)
		}
	}
	return w, nil
}

func (r *SQLiteRepo) ListWatchmakers(ctx context.Context) ([]models.Watchmaker, error) {
	return queryList(ctx, r, scanWatchmaker, `SELECT `+watchmakerColumns+` FROM watchmakers WHERE is_active = 1 ORDER BY id`)
}

func (r *SQLiteRepo) GetWatchmaker(ctx context.Context, id int64) (*models.Watchmaker, error) {
	return queryOne(ctx, r, scanWatchmaker, `SELECT `+watchmakerColumns+` FROM watchmakers WHERE id = ?`, id)
}

// ListWatchmakersBySpecialization folds case in Go rather than with SQLite's
// lower(), which only handles ASCII, so both backends match the same records.
func (r *SQLiteRepo) ListWatchmakersBySpecialization(ctx context.Context, specialization string) ([]models.Watchmaker, error) {
	active, err := r.ListWatchmakers(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(specialization)
	out := []models.Watchmaker{}
	for _, w := range active {
		if strings.Contains(strings.ToLower(w.Specialization), term) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *SQLiteRepo) CreateWatchmaker(ctx context.Context, in *models.InsertWatchmaker) (*models.Watchmaker, error) {
	if in == nil {
		return nil, fmt.Errorf("watchmaker is nil")
	}
	w := models.NewWatchmaker(0, *in)

	var certs any
	if w.Certifications != nil {
		b, err := json.Marshal(w.Certifications)
		if err != nil {
			return nil, fmt.Errorf("encode certifications: %w", err)
		}
		certs = string(b)
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO watchmakers (name, email, specialization, experience, hourly_rate, fixed_rate, rating, review_count, availability, certifications, bio, image_url, is_active) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.Name, w.Email, w.Specialization, w.Experience, nullString(w.HourlyRate), nullString(w.FixedRate), w.Rating, w.ReviewCount, w.Availability, certs, nullString(w.Bio), nullString(w.ImageURL), boolInt(w.IsActive))
	id, err := insertID(res, err, "watchmaker")
	if err != nil {
		return nil, err
	}
	w.ID = id

	return &w, nil
}
