package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nexora-labs/website-backend/models"
	"github.com/nexora-labs/website-backend/repositories"
	"github.com/nexora-labs/website-backend/storage"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

type GalleryService interface {
	ListImages(ctx context.Context, category string) ([]models.GalleryImage, error)
	AddImage(ctx context.Context, title, category string, image FileUpload) (*models.GalleryImage, error)
	DeleteImage(ctx context.Context, id int) error
}

type galleryService struct {
	gallery  repositories.GalleryRepository
	uploader storage.FileUploader
}

func NewGalleryService(gallery repositories.GalleryRepository, uploader storage.FileUploader) GalleryService {
	return &galleryService{
		gallery:  gallery,
		uploader: uploader,
	}
}

func (s *galleryService) ListImages(ctx context.Context, category string) ([]models.GalleryImage, error) {
	var filter *models.GalleryCategory
	if category != "" {
		c := models.GalleryCategory(category)
		if !c.Valid() {
			return nil, newValidationError("category", "category must be one of Events, Activities, Achievements, Office")
		}
		filter = &c
	}

	images, err := s.gallery.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	for i := range images {
		populateFileURL(&images[i].ImageURL, images[i].ImageKey, s.uploader)
	}
	return images, nil
}

func (s *galleryService) AddImage(ctx context.Context, title, category string, image FileUpload) (*models.GalleryImage, error) {
	ve := &ValidationError{}
	if strings.TrimSpace(title) == "" {
		ve.add("title", "title is required")
	}
	c := models.GalleryCategory(category)
	if !c.Valid() {
		ve.add("category", "category must be one of Events, Activities, Achievements, Office")
	}
	if !ve.empty() {
		return nil, ve
	}
	if verr := validateUpload("image", image.Filename, image.Size, imageExtensions...); verr != nil {
		return nil, verr
	}

	key := fmt.Sprintf("gallery/%s/%s", c, sanitizeFilename(image.Filename))
	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if _, err := s.uploader.Upload(ctx, key, contentType, image.Content); err != nil {
		return nil, fmt.Errorf("failed to store gallery image: %w", err)
	}

	img := &models.GalleryImage{
		Title:    strings.TrimSpace(title),
		Category: c,
		ImageKey: key,
	}
	if err := s.gallery.Create(ctx, img); err != nil {
		_ = s.uploader.Delete(ctx, key)
		return nil, fmt.Errorf("failed to save gallery image: %w", err)
	}

	populateFileURL(&img.ImageURL, img.ImageKey, s.uploader)
	return img, nil
}

func (s *galleryService) DeleteImage(ctx context.Context, id int) error {
	img, err := s.gallery.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGalleryImageNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load gallery image %d: %w", id, err)
	}

	if err := s.gallery.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrGalleryImageNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete gallery image %d: %w", id, err)
	}
	if img.ImageKey != "" {
		_ = s.uploader.Delete(ctx, img.ImageKey)
	}
	return nil
}
