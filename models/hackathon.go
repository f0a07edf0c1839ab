package models

import "time"

type HackathonRole string

const (
	HackathonRoleLeader HackathonRole = "LEADER"
	HackathonRoleMember HackathonRole = "MEMBER"
)

type HackathonTeam struct {
	ID               int       `json:"id" db:"id"`
	Name             string    `json:"team_name" db:"team_name"`
	ParticipantCount int       `json:"participant_count" db:"participant_count"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`

	Participants []HackathonParticipant `json:"participants,omitempty" db:"-"`
}

type HackathonParticipant struct {
	ID       int           `json:"id" db:"id"`
	TeamID   int           `json:"team_id" db:"team_id"`
	FullName string        `json:"full_name" db:"full_name"`
	Email    string        `json:"email" db:"email"`
	Phone    string        `json:"phone" db:"phone"`
	Branch   Branch        `json:"branch" db:"branch"`
	Section  Section       `json:"section" db:"section"`
	Year     Year          `json:"year" db:"year"`
	Role     HackathonRole `json:"role" db:"role"`
}
