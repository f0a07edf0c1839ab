package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nexora-labs/website-backend/models"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id int) (*models.Project, error)
	List(ctx context.Context, status *models.ProjectStatus) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int) error
}

type postgresProjectRepository struct {
	db *sql.DB
}

func NewPostgresProjectRepository(db *sql.DB) ProjectRepository {
	return &postgresProjectRepository{db: db}
}

func (r *postgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (title, client, description, status, progress, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		project.Title, project.Client, project.Description, project.Status,
		project.Progress, project.StartDate, project.EndDate,
	).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *postgresProjectRepository) GetByID(ctx context.Context, id int) (*models.Project, error) {
	var p models.Project
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, client, description, status, progress, start_date, end_date, created_at
		FROM projects WHERE id = $1`, id,
	).Scan(&p.ID, &p.Title, &p.Client, &p.Description, &p.Status, &p.Progress, &p.StartDate, &p.EndDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return &p, nil
}

func (r *postgresProjectRepository) List(ctx context.Context, status *models.ProjectStatus) ([]models.Project, error) {
	query := `
		SELECT id, title, client, description, status, progress, start_date, end_date, created_at
		FROM projects`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Client, &p.Description, &p.Status, &p.Progress, &p.StartDate, &p.EndDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *postgresProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET title = $1, client = $2, description = $3, status = $4, progress = $5, start_date = $6, end_date = $7
		WHERE id = $8`
	result, err := r.db.ExecContext(ctx, query,
		project.Title, project.Client, project.Description, project.Status,
		project.Progress, project.StartDate, project.EndDate, project.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project %d: %w", project.ID, err)
	}
	return checkAffectedRows(result, ErrProjectNotFound)
}

func (r *postgresProjectRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrProjectNotFound)
}
