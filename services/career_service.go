package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nexora-labs/website-backend/models"
	"github.com/nexora-labs/website-backend/repositories"
	"github.com/nexora-labs/website-backend/storage"
)

type CareerApplicationInput struct {
	FullName      string
	Email         string
	Phone         string
	College       string
	CGPA          string
	YearOfPassing int
	Experience    string
	Skills        string
}

type CareerService interface {
	SubmitApplication(ctx context.Context, input CareerApplicationInput, resume FileUpload) (*models.CareerApplication, error)
	ListApplications(ctx context.Context, search string) ([]models.CareerApplication, error)
}

type careerService struct {
	careers  repositories.CareerRepository
	uploader storage.FileUploader
}

func NewCareerService(careers repositories.CareerRepository, uploader storage.FileUploader) CareerService {
	return &careerService{
		careers:  careers,
		uploader: uploader,
	}
}

func (s *careerService) SubmitApplication(ctx context.Context, input CareerApplicationInput, resume FileUpload) (*models.CareerApplication, error) {
	ve := &ValidationError{}
	if strings.TrimSpace(input.FullName) == "" {
		ve.add("full_name", "full name is required")
	}
	if !validEmail(strings.TrimSpace(input.Email)) {
		ve.add("email", "a valid email address is required")
	}
	if !validPhone(input.Phone) {
		ve.add("phone", "phone must contain exactly 10 digits")
	}
	if strings.TrimSpace(input.College) == "" {
		ve.add("college", "college is required")
	}
	if input.YearOfPassing < 1950 || input.YearOfPassing > 2100 {
		ve.add("year_of_passing", "year of passing is out of range")
	}
	if strings.TrimSpace(input.Skills) == "" {
		ve.add("skills", "skills are required")
	}
	if !ve.empty() {
		return nil, ve
	}

	if verr := validateUpload("resume", resume.Filename, resume.Size, ".pdf"); verr != nil {
		return nil, verr
	}

	key := "resume/" + uuid.NewString() + strings.ToLower(filepath.Ext(resume.Filename))
	contentType := resume.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	if _, err := s.uploader.Upload(ctx, key, contentType, resume.Content); err != nil {
		return nil, fmt.Errorf("failed to store resume: %w", err)
	}

	app := &models.CareerApplication{
		FullName:      strings.TrimSpace(input.FullName),
		Email:         strings.TrimSpace(input.Email),
		Phone:         input.Phone,
		College:       strings.TrimSpace(input.College),
		CGPA:          strings.TrimSpace(input.CGPA),
		YearOfPassing: input.YearOfPassing,
		Experience:    strings.TrimSpace(input.Experience),
		Skills:        strings.TrimSpace(input.Skills),
		ResumeKey:     key,
	}
	if err := s.careers.Create(ctx, app); err != nil {
		// The row never existed, so remove the orphaned object.
		_ = s.uploader.Delete(ctx, key)
		return nil, fmt.Errorf("failed to save career application: %w", err)
	}

	populateFileURL(&app.ResumeURL, app.ResumeKey, s.uploader)
	return app, nil
}

func (s *careerService) ListApplications(ctx context.Context, search string) ([]models.CareerApplication, error) {
	apps, err := s.careers.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list career applications: %w", err)
	}
	for i := range apps {
		populateFileURL(&apps[i].ResumeURL, apps[i].ResumeKey, s.uploader)
	}
	return apps, nil
}
