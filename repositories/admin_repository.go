package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nexora-labs/website-backend/models"
)

var ErrAdminUserNotFound = errors.New("admin user not found")

type AdminUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Upsert(ctx context.Context, email, passwordHash string) error
}

type postgresAdminUserRepository struct {
	db *sql.DB
}

func NewPostgresAdminUserRepository(db *sql.DB) AdminUserRepository {
	return &postgresAdminUserRepository{db: db}
}

func (r *postgresAdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM admin_users WHERE email = $1`, email,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminUserNotFound
		}
		return nil, fmt.Errorf("failed to get admin user by email: %w", err)
	}
	return &user, nil
}

func (r *postgresAdminUserRepository) Upsert(ctx context.Context, email, passwordHash string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admin_users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT admin_users_email_key
		DO UPDATE SET password_hash = EXCLUDED.password_hash`, email, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to upsert admin user: %w", err)
	}
	return nil
}
