package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nexora-labs/website-backend/models"
)

var ErrInquiryNotFound = errors.New("cpu inquiry not found")

type InquiryRepository interface {
	Create(ctx context.Context, inq *models.CpuInquiry) error
	GetByID(ctx context.Context, id int) (*models.CpuInquiry, error)
	List(ctx context.Context, search, cpuModel string) ([]models.CpuInquiry, error)
	Count(ctx context.Context) (int, error)
}

type postgresInquiryRepository struct {
	db *sql.DB
}

func NewPostgresInquiryRepository(db *sql.DB) InquiryRepository {
	return &postgresInquiryRepository{db: db}
}

func (r *postgresInquiryRepository) Create(ctx context.Context, inq *models.CpuInquiry) error {
	query := `
		INSERT INTO cpu_inquiries (full_name, email, phone, cpu_model, quantity, ram, storage, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		inq.FullName, inq.Email, inq.Phone, inq.CpuModel, inq.Quantity, inq.RAM, inq.Storage, inq.Message,
	).Scan(&inq.ID, &inq.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create cpu inquiry: %w", err)
	}
	return nil
}

func (r *postgresInquiryRepository) GetByID(ctx context.Context, id int) (*models.CpuInquiry, error) {
	var inq models.CpuInquiry
	err := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, email, phone, cpu_model, quantity, ram, storage, message, created_at
		FROM cpu_inquiries WHERE id = $1`, id,
	).Scan(&inq.ID, &inq.FullName, &inq.Email, &inq.Phone, &inq.CpuModel, &inq.Quantity, &inq.RAM, &inq.Storage, &inq.Message, &inq.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to get cpu inquiry %d: %w", id, err)
	}
	return &inq, nil
}

func (r *postgresInquiryRepository) List(ctx context.Context, search, cpuModel string) ([]models.CpuInquiry, error) {
	query := `
		SELECT id, full_name, email, phone, cpu_model, quantity, ram, storage, message, created_at
		FROM cpu_inquiries`
	args := []interface{}{}
	where := ""
	if search != "" {
		args = append(args, "%"+search+"%")
		where = fmt.Sprintf(" WHERE (full_name ILIKE $%d OR email ILIKE $%d OR cpu_model ILIKE $%d)", len(args), len(args), len(args))
	}
	if cpuModel != "" {
		args = append(args, cpuModel)
		if where == "" {
			where = fmt.Sprintf(" WHERE cpu_model = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND cpu_model = $%d", len(args))
		}
	}
	query += where + ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cpu inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := make([]models.CpuInquiry, 0)
	for rows.Next() {
		var i models.CpuInquiry
		if err := rows.Scan(&i.ID, &i.FullName, &i.Email, &i.Phone, &i.CpuModel, &i.Quantity, &i.RAM, &i.Storage, &i.Message, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cpu inquiry row: %w", err)
		}
		inquiries = append(inquiries, i)
	}
	return inquiries, rows.Err()
}

func (r *postgresInquiryRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cpu_inquiries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cpu inquiries: %w", err)
	}
	return count, nil
}
