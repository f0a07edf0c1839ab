package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nexora-labs/website-backend/models"
)

var ErrCommunityItemNotFound = errors.New("community item not found")

type CommunityFilter struct {
	Section  *models.CommunitySection
	ItemType *models.CommunityItemType
}

type CommunityRepository interface {
	Create(ctx context.Context, item *models.CommunityItem) error
	GetByID(ctx context.Context, id int) (*models.CommunityItem, error)
	List(ctx context.Context, filter CommunityFilter) ([]models.CommunityItem, error)
	Delete(ctx context.Context, id int) error
}

type postgresCommunityRepository struct {
	db *sql.DB
}

func NewPostgresCommunityRepository(db *sql.DB) CommunityRepository {
	return &postgresCommunityRepository{db: db}
}

func (r *postgresCommunityRepository) Create(ctx context.Context, item *models.CommunityItem) error {
	query := `
		INSERT INTO community_items (section, item_type, title, description, date, status, participants, image_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		item.Section, item.ItemType, item.Title, item.Description,
		item.Date, item.Status, item.Participants, item.ImageKey,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create community item: %w", err)
	}
	return nil
}

func (r *postgresCommunityRepository) GetByID(ctx context.Context, id int) (*models.CommunityItem, error) {
	var item models.CommunityItem
	err := r.db.QueryRowContext(ctx, `
		SELECT id, section, item_type, title, description, date, status, participants, image_key, created_at
		FROM community_items WHERE id = $1`, id,
	).Scan(&item.ID, &item.Section, &item.ItemType, &item.Title, &item.Description,
		&item.Date, &item.Status, &item.Participants, &item.ImageKey, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCommunityItemNotFound
		}
		return nil, fmt.Errorf("failed to get community item %d: %w", id, err)
	}
	return &item, nil
}

func (r *postgresCommunityRepository) List(ctx context.Context, filter CommunityFilter) ([]models.CommunityItem, error) {
	query := `
		SELECT id, section, item_type, title, description, date, status, participants, image_key, created_at
		FROM community_items`
	args := []interface{}{}
	where := ""
	if filter.Section != nil {
		args = append(args, *filter.Section)
		where = fmt.Sprintf(" WHERE section = $%d", len(args))
	}
	if filter.ItemType != nil {
		args = append(args, *filter.ItemType)
		if where == "" {
			where = fmt.Sprintf(" WHERE item_type = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND item_type = $%d", len(args))
		}
	}
	query += where + ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list community items: %w", err)
	}
	defer rows.Close()

	items := make([]models.CommunityItem, 0)
	for rows.Next() {
		var item models.CommunityItem
		if err := rows.Scan(&item.ID, &item.Section, &item.ItemType, &item.Title, &item.Description,
			&item.Date, &item.Status, &item.Participants, &item.ImageKey, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan community item row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresCommunityRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM community_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete community item %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrCommunityItemNotFound)
}
