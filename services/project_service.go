package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nexora-labs/website-backend/models"
	"github.com/nexora-labs/website-backend/repositories"
)

type ProjectInput struct {
	Title       string `json:"title"`
	Client      string `json:"client"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type ProjectService interface {
	ListProjects(ctx context.Context, status string) ([]models.Project, error)
	GetProject(ctx context.Context, id int) (*models.Project, error)
	CreateProject(ctx context.Context, input ProjectInput) (*models.Project, error)
	UpdateProject(ctx context.Context, id int, input ProjectInput) (*models.Project, error)
	DeleteProject(ctx context.Context, id int) error
}

type projectService struct {
	projects repositories.ProjectRepository
}

func NewProjectService(projects repositories.ProjectRepository) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) ListProjects(ctx context.Context, status string) ([]models.Project, error) {
	var filter *models.ProjectStatus
	if status != "" {
		st := models.ProjectStatus(status)
		if !st.Valid() {
			return nil, newValidationError("status", "status must be one of active, upcoming, completed")
		}
		filter = &st
	}

	projects, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) GetProject(ctx context.Context, id int) (*models.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return project, nil
}

func validateProjectInput(input ProjectInput) (*models.Project, *ValidationError) {
	ve := &ValidationError{}
	if strings.TrimSpace(input.Title) == "" {
		ve.add("title", "title is required")
	}
	status := models.ProjectStatus(input.Status)
	if !status.Valid() {
		ve.add("status", "status must be one of active, upcoming, completed")
	}
	if input.Progress < 0 || input.Progress > 100 {
		ve.add("progress", "progress must be between 0 and 100")
	}
	startDate, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		ve.add("start_date", "start date must be in YYYY-MM-DD format")
	}
	endDate, err := time.Parse(dateLayout, input.EndDate)
	if err != nil {
		ve.add("end_date", "end date must be in YYYY-MM-DD format")
	} else if !startDate.IsZero() && endDate.Before(startDate) {
		ve.add("end_date", "end date must not be before start date")
	}
	if !ve.empty() {
		return nil, ve
	}

	return &models.Project{
		Title:       strings.TrimSpace(input.Title),
		Client:      strings.TrimSpace(input.Client),
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		Progress:    input.Progress,
		StartDate:   startDate,
		EndDate:     endDate,
	}, nil
}

func (s *projectService) CreateProject(ctx context.Context, input ProjectInput) (*models.Project, error) {
	project, ve := validateProjectInput(input)
	if ve != nil {
		return nil, ve
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	return project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id int, input ProjectInput) (*models.Project, error) {
	project, ve := validateProjectInput(input)
	if ve != nil {
		return nil, ve
	}
	project.ID = id
	if err := s.projects.Update(ctx, project); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project %d: %w", id, err)
	}
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id int) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete project %d: %w", id, err)
	}
	return nil
}
