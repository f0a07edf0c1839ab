package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nexora-labs/website-backend/models"
)

var ErrMOUNotFound = errors.New("mou not found")

type MOUFilter struct {
	Category   *models.MOUCategory
	ActiveOnly bool
}

type MOURepository interface {
	Create(ctx context.Context, mou *models.MOU) error
	GetByID(ctx context.Context, id int) (*models.MOU, error)
	List(ctx context.Context, filter MOUFilter) ([]models.MOU, error)
	Update(ctx context.Context, mou *models.MOU) error
	Delete(ctx context.Context, id int) error
}

type postgresMOURepository struct {
	db *sql.DB
}

func NewPostgresMOURepository(db *sql.DB) MOURepository {
	return &postgresMOURepository{db: db}
}

func (r *postgresMOURepository) Create(ctx context.Context, mou *models.MOU) error {
	highlights, err := json.Marshal(mou.Highlights)
	if err != nil {
		return fmt.Errorf("failed to encode mou highlights: %w", err)
	}
	query := `
		INSERT INTO mous (title, category, description, highlights, icon, start_date, pdf_key, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err = r.db.QueryRowContext(ctx, query,
		mou.Title, mou.Category, mou.Description, highlights, mou.Icon, mou.StartDate, mou.PDFKey, mou.IsActive,
	).Scan(&mou.ID)
	if err != nil {
		return fmt.Errorf("failed to create mou: %w", err)
	}
	return nil
}

func (r *postgresMOURepository) GetByID(ctx context.Context, id int) (*models.MOU, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, category, description, highlights, icon, start_date, pdf_key, is_active
		FROM mous WHERE id = $1`, id)
	mou, err := scanMOU(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMOUNotFound
		}
		return nil, fmt.Errorf("failed to get mou %d: %w", id, err)
	}
	return mou, nil
}

func (r *postgresMOURepository) List(ctx context.Context, filter MOUFilter) ([]models.MOU, error) {
	query := `
		SELECT id, title, category, description, highlights, icon, start_date, pdf_key, is_active
		FROM mous`
	args := []interface{}{}
	where := ""
	if filter.Category != nil {
		args = append(args, *filter.Category)
		where = fmt.Sprintf(" WHERE category = $%d", len(args))
	}
	if filter.ActiveOnly {
		if where == "" {
			where = " WHERE is_active"
		} else {
			where += " AND is_active"
		}
	}
	query += where + ` ORDER BY start_date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list mous: %w", err)
	}
	defer rows.Close()

	mous := make([]models.MOU, 0)
	for rows.Next() {
		mou, err := scanMOU(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mou row: %w", err)
		}
		mous = append(mous, *mou)
	}
	return mous, rows.Err()
}

func (r *postgresMOURepository) Update(ctx context.Context, mou *models.MOU) error {
	highlights, err := json.Marshal(mou.Highlights)
	if err != nil {
		return fmt.Errorf("failed to encode mou highlights: %w", err)
	}
	query := `
		UPDATE mous
		SET title = $1, category = $2, description = $3, highlights = $4, icon = $5,
		    start_date = $6, pdf_key = $7, is_active = $8
		WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		mou.Title, mou.Category, mou.Description, highlights, mou.Icon,
		mou.StartDate, mou.PDFKey, mou.IsActive, mou.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mou %d: %w", mou.ID, err)
	}
	return checkAffectedRows(result, ErrMOUNotFound)
}

func (r *postgresMOURepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM mous WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mou %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrMOUNotFound)
}

func scanMOU(scanner interface{ Scan(dest ...interface{}) error }) (*models.MOU, error) {
	var mou models.MOU
	var highlights []byte
	err := scanner.Scan(&mou.ID, &mou.Title, &mou.Category, &mou.Description, &highlights,
		&mou.Icon, &mou.StartDate, &mou.PDFKey, &mou.IsActive)
	if err != nil {
		return nil, err
	}
	if len(highlights) > 0 {
		if err := json.Unmarshal(highlights, &mou.Highlights); err != nil {
			return nil, fmt.Errorf("failed to decode mou highlights: %w", err)
		}
	}
	return &mou, nil
}
