package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nexora-labs/website-backend/models"
	"github.com/nexora-labs/website-backend/repositories"
	"github.com/nexora-labs/website-backend/storage"
)

const dateLayout = "2006-01-02"

type MOUInput struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Icon        string   `json:"icon"`
	StartDate   string   `json:"start_date"`
	IsActive    bool     `json:"is_active"`
}

type MOUService interface {
	ListMOUs(ctx context.Context, category string, activeOnly bool) ([]models.MOU, error)
	CreateMOU(ctx context.Context, input MOUInput, pdf FileUpload) (*models.MOU, error)
	UpdateMOU(ctx context.Context, id int, input MOUInput, pdf *FileUpload) (*models.MOU, error)
	DeleteMOU(ctx context.Context, id int) error
}

type mouService struct {
	mous     repositories.MOURepository
	uploader storage.FileUploader
}

func NewMOUService(mous repositories.MOURepository, uploader storage.FileUploader) MOUService {
	return &mouService{
		mous:     mous,
		uploader: uploader,
	}
}

func (s *mouService) ListMOUs(ctx context.Context, category string, activeOnly bool) ([]models.MOU, error) {
	filter := repositories.MOUFilter{ActiveOnly: activeOnly}
	if category != "" {
		c := models.MOUCategory(category)
		if !c.Valid() {
			return nil, newValidationError("category", "category must be one of cloud, education, security, innovation")
		}
		filter.Category = &c
	}

	mous, err := s.mous.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list mous: %w", err)
	}
	for i := range mous {
		populateFileURL(&mous[i].PDFURL, mous[i].PDFKey, s.uploader)
	}
	return mous, nil
}

func (s *mouService) validateInput(input MOUInput) (*models.MOU, *ValidationError) {
	ve := &ValidationError{}
	if strings.TrimSpace(input.Title) == "" {
		ve.add("title", "title is required")
	}
	category := models.MOUCategory(input.Category)
	if !category.Valid() {
		ve.add("category", "category must be one of cloud, education, security, innovation")
	}
	startDate, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		ve.add("start_date", "start date must be in YYYY-MM-DD format")
	}
	if !ve.empty() {
		return nil, ve
	}

	return &models.MOU{
		Title:       strings.TrimSpace(input.Title),
		Category:    category,
		Description: strings.TrimSpace(input.Description),
		Highlights:  input.Highlights,
		Icon:        strings.TrimSpace(input.Icon),
		StartDate:   startDate,
		IsActive:    input.IsActive,
	}, nil
}

func (s *mouService) CreateMOU(ctx context.Context, input MOUInput, pdf FileUpload) (*models.MOU, error) {
	mou, ve := s.validateInput(input)
	if ve != nil {
		return nil, ve
	}
	if verr := validateUpload("pdf", pdf.Filename, pdf.Size, ".pdf"); verr != nil {
		return nil, verr
	}

	key := fmt.Sprintf("mous/%s/%s", mou.Category, sanitizeFilename(pdf.Filename))
	if _, err := s.uploader.Upload(ctx, key, "application/pdf", pdf.Content); err != nil {
		return nil, fmt.Errorf("failed to store mou pdf: %w", err)
	}
	mou.PDFKey = key

	if err := s.mous.Create(ctx, mou); err != nil {
		_ = s.uploader.Delete(ctx, key)
		return nil, fmt.Errorf("failed to save mou: %w", err)
	}

	populateFileURL(&mou.PDFURL, mou.PDFKey, s.uploader)
	return mou, nil
}

func (s *mouService) UpdateMOU(ctx context.Context, id int, input MOUInput, pdf *FileUpload) (*models.MOU, error) {
	existing, err := s.mous.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMOUNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load mou %d: %w", id, err)
	}

	mou, ve := s.validateInput(input)
	if ve != nil {
		return nil, ve
	}
	mou.ID = id
	mou.PDFKey = existing.PDFKey

	oldKey := ""
	if pdf != nil {
		if verr := validateUpload("pdf", pdf.Filename, pdf.Size, ".pdf"); verr != nil {
			return nil, verr
		}
		key := fmt.Sprintf("mous/%s/%s", mou.Category, sanitizeFilename(pdf.Filename))
		if _, err := s.uploader.Upload(ctx, key, "application/pdf", pdf.Content); err != nil {
			return nil, fmt.Errorf("failed to store mou pdf: %w", err)
		}
		if key != existing.PDFKey {
			oldKey = existing.PDFKey
		}
		mou.PDFKey = key
	}

	if err := s.mous.Update(ctx, mou); err != nil {
		if errors.Is(err, repositories.ErrMOUNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update mou %d: %w", id, err)
	}
	if oldKey != "" {
		_ = s.uploader.Delete(ctx, oldKey)
	}

	populateFileURL(&mou.PDFURL, mou.PDFKey, s.uploader)
	return mou, nil
}

func (s *mouService) DeleteMOU(ctx context.Context, id int) error {
	existing, err := s.mous.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMOUNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load mou %d: %w", id, err)
	}

	if err := s.mous.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMOUNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete mou %d: %w", id, err)
	}
	if existing.PDFKey != "" {
		_ = s.uploader.Delete(ctx, existing.PDFKey)
	}
	return nil
}
