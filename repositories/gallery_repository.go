package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nexora-labs/website-backend/models"
)

var ErrGalleryImageNotFound = errors.New("gallery image not found")

type GalleryRepository interface {
	Create(ctx context.Context, img *models.GalleryImage) error
	GetByID(ctx context.Context, id int) (*models.GalleryImage, error)
	List(ctx context.Context, category *models.GalleryCategory) ([]models.GalleryImage, error)
	Delete(ctx context.Context, id int) error
}

type postgresGalleryRepository struct {
	db *sql.DB
}

func NewPostgresGalleryRepository(db *sql.DB) GalleryRepository {
	return &postgresGalleryRepository{db: db}
}

func (r *postgresGalleryRepository) Create(ctx context.Context, img *models.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (title, category, image_key)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, img.Title, img.Category, img.ImageKey).Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

func (r *postgresGalleryRepository) GetByID(ctx context.Context, id int) (*models.GalleryImage, error) {
	var img models.GalleryImage
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, category, image_key, created_at FROM gallery_images WHERE id = $1`, id,
	).Scan(&img.ID, &img.Title, &img.Category, &img.ImageKey, &img.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGalleryImageNotFound
		}
		return nil, fmt.Errorf("failed to get gallery image %d: %w", id, err)
	}
	return &img, nil
}

func (r *postgresGalleryRepository) List(ctx context.Context, category *models.GalleryCategory) ([]models.GalleryImage, error) {
	query := `SELECT id, title, category, image_key, created_at FROM gallery_images`
	args := []interface{}{}
	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, *category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	defer rows.Close()

	images := make([]models.GalleryImage, 0)
	for rows.Next() {
		var img models.GalleryImage
		if err := rows.Scan(&img.ID, &img.Title, &img.Category, &img.ImageKey, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gallery image row: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *postgresGalleryRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery image %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrGalleryImageNotFound)
}
