package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nexora-labs/website-backend/models"
)

var ErrHackathonTeamNotFound = errors.New("hackathon team not found")

type HackathonTeamRepository interface {
	CreateWithRoster(ctx context.Context, name string, roster []models.RosterMember) (*models.HackathonTeam, error)
	GetByID(ctx context.Context, id int) (*models.HackathonTeam, error)
	List(ctx context.Context, search string) ([]models.TeamListing, error)
	Count(ctx context.Context) (int, error)
}

type postgresHackathonTeamRepository struct {
	db *sql.DB
}

func NewPostgresHackathonTeamRepository(db *sql.DB) HackathonTeamRepository {
	return &postgresHackathonTeamRepository{db: db}
}

func (r *postgresHackathonTeamRepository) CreateWithRoster(ctx context.Context, name string, roster []models.RosterMember) (team *models.HackathonTeam, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin hackathon registration transaction: %w", err)
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

	team = &models.HackathonTeam{Name: name, ParticipantCount: len(roster)}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO hackathon_teams (team_name, participant_count) VALUES ($1, $2) RETURNING id, created_at`,
		name, team.ParticipantCount,
	).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		return nil, mapTeamInsertError(err, "failed to create hackathon team")
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO hackathon_participants (team_id, full_name, email, phone, branch, section, year, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare hackathon participant insert: %w", err)
	}
	defer stmt.Close()

	team.Participants = make([]models.HackathonParticipant, 0, len(roster))
	for _, m := range roster {
		role := models.HackathonRoleMember
		if m.Leader {
			role = models.HackathonRoleLeader
		}
		p := models.HackathonParticipant{
			TeamID:   team.ID,
			FullName: m.FullName,
			Email:    m.Email,
			Phone:    m.Phone,
			Branch:   m.Branch,
			Section:  m.Section,
			Year:     m.Year,
			Role:     role,
		}
		err = stmt.QueryRowContext(ctx, team.ID, p.FullName, p.Email, p.Phone, p.Branch, p.Section, p.Year, p.Role).Scan(&p.ID)
		if err != nil {
			return nil, mapTeamInsertError(err, fmt.Sprintf("failed to create hackathon participant %s", p.Email))
		}
		team.Participants = append(team.Participants, p)
	}

	return team, nil
}

func (r *postgresHackathonTeamRepository) GetByID(ctx context.Context, id int) (*models.HackathonTeam, error) {
	var team models.HackathonTeam
	err := r.db.QueryRowContext(ctx,
		`SELECT id, team_name, participant_count, created_at FROM hackathon_teams WHERE id = $1`, id,
	).Scan(&team.ID, &team.Name, &team.ParticipantCount, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHackathonTeamNotFound
		}
		return nil, fmt.Errorf("failed to get hackathon team %d: %w", id, err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, team_id, full_name, email, phone, branch, section, year, role
		FROM hackathon_participants WHERE team_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathon participants for team %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.HackathonParticipant
		if err := rows.Scan(&p.ID, &p.TeamID, &p.FullName, &p.Email, &p.Phone, &p.Branch, &p.Section, &p.Year, &p.Role); err != nil {
			return nil, fmt.Errorf("failed to scan hackathon participant row: %w", err)
		}
		team.Participants = append(team.Participants, p)
	}
	return &team, rows.Err()
}

func (r *postgresHackathonTeamRepository) List(ctx context.Context, search string) ([]models.TeamListing, error) {
	query := `
		SELECT t.id, t.team_name, t.created_at,
		       COALESCE(MAX(p.full_name) FILTER (WHERE p.role = 'LEADER'), '') AS leader_name,
		       COUNT(p.id) AS participants_count,
		       COALESCE(STRING_AGG(p.full_name, ', ' ORDER BY p.id), '') AS participants_names
		FROM hackathon_teams t
		LEFT JOIN hackathon_participants p ON p.team_id = t.id`
	args := []interface{}{}
	if search != "" {
		query += `
		WHERE t.team_name ILIKE $1
		   OR EXISTS (
		        SELECT 1 FROM hackathon_participants sp
		        WHERE sp.team_id = t.id AND (sp.full_name ILIKE $1 OR sp.email ILIKE $1)
		   )`
		args = append(args, "%"+search+"%")
	}
	query += `
		GROUP BY t.id
		ORDER BY t.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathon teams: %w", err)
	}
	defer rows.Close()

	listings := make([]models.TeamListing, 0)
	for rows.Next() {
		var l models.TeamListing
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.LeaderName, &l.ParticipantsCount, &l.ParticipantNames); err != nil {
			return nil, fmt.Errorf("failed to scan hackathon team listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *postgresHackathonTeamRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hackathon_teams`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count hackathon teams: %w", err)
	}
	return count, nil
}
