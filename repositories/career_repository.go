package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nexora-labs/website-backend/models"
)

type CareerRepository interface {
	Create(ctx context.Context, app *models.CareerApplication) error
	List(ctx context.Context, search string) ([]models.CareerApplication, error)
	Count(ctx context.Context) (int, error)
}

type postgresCareerRepository struct {
	db *sql.DB
}

func NewPostgresCareerRepository(db *sql.DB) CareerRepository {
	return &postgresCareerRepository{db: db}
}

func (r *postgresCareerRepository) Create(ctx context.Context, app *models.CareerApplication) error {
	query := `
		INSERT INTO career_applications (full_name, email, phone, college, cgpa, year_of_passing, experience, skills, resume_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, applied_at`
	err := r.db.QueryRowContext(ctx, query,
		app.FullName, app.Email, app.Phone, app.College, app.CGPA,
		app.YearOfPassing, app.Experience, app.Skills, app.ResumeKey,
	).Scan(&app.ID, &app.AppliedAt)
	if err != nil {
		return fmt.Errorf("failed to create career application: %w", err)
	}
	return nil
}

func (r *postgresCareerRepository) List(ctx context.Context, search string) ([]models.CareerApplication, error) {
	query := `
		SELECT id, full_name, email, phone, college, cgpa, year_of_passing, experience, skills, resume_key, applied_at
		FROM career_applications`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE full_name ILIKE $1 OR email ILIKE $1 OR skills ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY applied_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list career applications: %w", err)
	}
	defer rows.Close()

	apps := make([]models.CareerApplication, 0)
	for rows.Next() {
		var a models.CareerApplication
		if err := rows.Scan(&a.ID, &a.FullName, &a.Email, &a.Phone, &a.College, &a.CGPA,
			&a.YearOfPassing, &a.Experience, &a.Skills, &a.ResumeKey, &a.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan career application row: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *postgresCareerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM career_applications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count career applications: %w", err)
	}
	return count, nil
}
