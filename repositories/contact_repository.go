package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nexora-labs/website-backend/models"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	List(ctx context.Context, search string) ([]models.ContactMessage, error)
	Count(ctx context.Context) (int, error)
}

type postgresContactRepository struct {
	db *sql.DB
}

func NewPostgresContactRepository(db *sql.DB) ContactRepository {
	return &postgresContactRepository{db: db}
}

func (r *postgresContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *postgresContactRepository) List(ctx context.Context, search string) ([]models.ContactMessage, error) {
	query := `SELECT id, name, email, phone, subject, message, created_at FROM contact_messages`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR email ILIKE $1 OR subject ILIKE $1 OR message ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]models.ContactMessage, 0)
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message row: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *postgresContactRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return count, nil
}
