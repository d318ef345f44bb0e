package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/watchrepair/pkg/models"
)

const serviceColumns = `id, name, description, category, base_price, estimated_duration, image_url`

func scanService(s scanner) (models.Service, error) {
	var (
		sv    models.Service
		image sql.NullString
	)
	err := s.Scan(&sv.ID, &sv.Name, &sv.Description, &sv.Category, &sv.BasePrice, &sv.EstimatedDuration, &image)
	sv.ImageURL = stringPtr(image)
	return sv, err
}

func (r *SQLiteRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	return queryList(ctx, r, scanService, `SELECT `+serviceColumns+` FROM services ORDER BY id`)
}

func (r *SQLiteRepo) GetService(ctx context.Context, id int64) (*models.Service, error) {
	return queryOne(ctx, r, scanService, `SELECT `+serviceColumns+` FROM services WHERE id = ?`, id)
}

func (r *SQLiteRepo) ListServicesByCategory(ctx context.Context, category string) ([]models.Service, error) {
	return queryList(ctx, r, scanService, `SELECT `+serviceColumns+` FROM services WHERE category = ? ORDER BY id`, category)
}

func (r *SQLiteRepo) CreateService(ctx context.Context, in *models.InsertService) (*models.Service, error) {
	if in == nil {
		return nil, fmt.Errorf("service is nil")
	}
	sv := models.NewService(0, *in)

	res, err := r.conn.Exec(ctx, `INSERT INTO services (name, description, category, base_price, estimated_duration, image_url) VALUES (?, ?, ?, ?, ?, ?)`,
		sv.Name, sv.Description, sv.Category, sv.BasePrice, sv.EstimatedDuration, nullString(sv.ImageURL))
	id, err := insertID(res, err, "service")
	if err != nil {
		return nil, err
	}
	sv.ID = id

	return &sv, nil
}
