package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/nexora-labs/website-backend/models"
)

var (
	ErrTeamNotFound             = errors.New("team not found")
	ErrTeamNameConflict         = errors.New("team name already exists")
	ErrParticipantEmailConflict = errors.New("participant email already used within this team")
)

type TeamRepository interface {
	CreateWithRoster(ctx context.Context, name string, roster []models.RosterMember) (*models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context, search string) ([]models.TeamListing, error)
	Count(ctx context.Context) (int, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

// CreateWithRoster persists the team row and every participant row in a
// single transaction. Any failure rolls back the whole registration.
func (r *postgresTeamRepository) CreateWithRoster(ctx context.Context, name string, roster []models.RosterMember) (team *models.Team, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin team registration transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	team = &models.Team{Name: name}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO teams (team_name) VALUES ($1) RETURNING id, created_at`,
		name,
	).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		return nil, mapTeamInsertError(err, "failed to create team")
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO participants (team_id, full_name, email, phone, branch, section, year, is_leader)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare participant insert: %w", err)
	}
	defer stmt.Close()

	team.Participants = make([]models.Participant, 0, len(roster))
	for _, m := range roster {
		p := models.Participant{
			TeamID:   team.ID,
			FullName: m.FullName,
			Email:    m.Email,
			Phone:    m.Phone,
			Branch:   m.Branch,
			Section:  m.Section,
			Year:     m.Year,
			IsLeader: m.Leader,
		}
		err = stmt.QueryRowContext(ctx, team.ID, p.FullName, p.Email, p.Phone, p.Branch, p.Section, p.Year, p.IsLeader).Scan(&p.ID)
		if err != nil {
			return nil, mapTeamInsertError(err, fmt.Sprintf("failed to create participant %s", p.Email))
		}
		team.Participants = append(team.Participants, p)
	}

	return team, nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	var team models.Team
	err := r.db.QueryRowContext(ctx,
		`SELECT id, team_name, created_at FROM teams WHERE id = $1`, id,
	).Scan(&team.ID, &team.Name, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, team_id, full_name, email, phone, branch, section, year, is_leader
		FROM participants WHERE team_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants for team %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.TeamID, &p.FullName, &p.Email, &p.Phone, &p.Branch, &p.Section, &p.Year, &p.IsLeader); err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		team.Participants = append(team.Participants, p)
	}
	return &team, rows.Err()
}

// List returns the derived operator projection: leader name, participant
// count and a comma-joined participant list, all computed from the
// participants relation at query time.
func (r *postgresTeamRepository) List(ctx context.Context, search string) ([]models.TeamListing, error) {
	query := `
		SELECT t.id, t.team_name, t.created_at,
		       COALESCE(MAX(p.full_name) FILTER (WHERE p.is_leader), '') AS leader_name,
		       COUNT(p.id) AS participants_count,
		       COALESCE(STRING_AGG(p.full_name, ', ' ORDER BY p.id), '') AS participants_names
		FROM teams t
		LEFT JOIN participants p ON p.team_id = t.id`
	args := []interface{}{}
	if search != "" {
		query += `
		WHERE t.team_name ILIKE $1
		   OR EXISTS (
		        SELECT 1 FROM participants sp
		        WHERE sp.team_id = t.id AND (sp.full_name ILIKE $1 OR sp.email ILIKE $1)
		   )`
		args = append(args, "%"+search+"%")
	}
	query += `
		GROUP BY t.id
		ORDER BY t.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	listings := make([]models.TeamListing, 0)
	for rows.Next() {
		var l models.TeamListing
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.LeaderName, &l.ParticipantsCount, &l.ParticipantNames); err != nil {
			return nil, fmt.Errorf("failed to scan team listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *postgresTeamRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return count, nil
}

// mapTeamInsertError translates unique-constraint violations raised inside
// the registration transaction into sentinel errors. The constraints are the
// authoritative backstop for races the pre-validation cannot see.
func mapTeamInsertError(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "teams_team_name_key", "hackathon_teams_team_name_key":
			return ErrTeamNameConflict
		case "participants_team_id_email_key", "hackathon_participants_team_id_email_key":
			return ErrParticipantEmailConflict
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
