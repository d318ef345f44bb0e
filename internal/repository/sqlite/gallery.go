package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/watchrepair/pkg/models"
)

const galleryColumns = `id, title, description, before_image_url, after_image_url, watchmaker_name, service_type, completion_time, featured`

func scanGalleryItem(s scanner) (models.GalleryItem, error) {
	var (
		g                models.GalleryItem
		desc, completion sql.NullString
	)
	err := s.Scan(&g.ID, &g.Title, &desc, &g.BeforeImageURL, &g.AfterImageURL, &g.WatchmakerName, &g.ServiceType, &completion, &g.Featured)
	g.Description = stringPtr(desc)
	g.CompletionTime = stringPtr(completion)
	return g, err
}

func (r *SQLiteRepo) ListGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	return queryList(ctx, r, scanGalleryItem, `SELECT `+galleryColumns+` FROM gallery_items ORDER BY id`)
}

func (r *SQLiteRepo) ListFeaturedGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	return queryList(ctx, r, scanGalleryItem, `SELECT `+galleryColumns+` FROM gallery_items WHERE featured = 1 ORDER BY id`)
}

func (r *SQLiteRepo) GetGalleryItem(ctx context.Context, id int64) (*models.GalleryItem, error) {
	return queryOne(ctx, r, scanGalleryItem, `SELECT `+galleryColumns+` FROM gallery_items WHERE id = ?`, id)
}

func (r *SQLiteRepo) CreateGalleryItem(ctx context.Context, in *models.InsertGalleryItem) (*models.GalleryItem, error) {
	if in == nil {
		return nil, fmt.Errorf("gallery item is nil")
	}
	g := models.NewGalleryItem(0, *in)

	res, err := r.conn.Exec(ctx, `INSERT INTO gallery_items (title, description, before_image_url, after_image_url, watchmaker_name, service_type, completion_time, featured) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.Title, nullString(g.Description), g.BeforeImageURL, g.AfterImageURL, g.WatchmakerName, g.ServiceType, nullString(g.CompletionTime), boolInt(g.Featured))
	id, err := insertID(res, err, "gallery item")
	if err != nil {
		return nil, err
	}
	g.ID = id

	return &g, nil
}
