package models

import "time"

type Branch string

const (
	BranchCSE Branch = "CSE"
	BranchECE Branch = "ECE"
	BranchEEE Branch = "EEE"
	BranchIT  Branch = "IT"
)

func (b Branch) Valid() bool {
	switch b {
	case BranchCSE, BranchECE, BranchEEE, BranchIT:
		return true
	}
	return false
}

type Section string

const (
	SectionA Section = "A"
	SectionB Section = "B"
)

func (s Section) Valid() bool {
	return s == SectionA || s == SectionB
}

type Year string

const (
	YearFirst  Year = "1st"
	YearSecond Year = "2nd"
	YearThird  Year = "3rd"
	YearFourth Year = "4th"
)

func (y Year) Valid() bool {
	switch y {
	case YearFirst, YearSecond, YearThird, YearFourth:
		return true
	}
	return false
}

type Team struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"team_name" db:"team_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Participants []Participant `json:"participants,omitempty" db:"-"`
}

type Participant struct {
	ID       int     `json:"id" db:"id"`
	TeamID   int     `json:"team_id" db:"team_id"`
	FullName string  `json:"full_name" db:"full_name"`
	Email    string  `json:"email" db:"email"`
	Phone    string  `json:"phone" db:"phone"`
	Branch   Branch  `json:"branch" db:"branch"`
	Section  Section `json:"section" db:"section"`
	Year     Year    `json:"year" db:"year"`
	IsLeader bool    `json:"is_leader" db:"is_leader"`
}

// RosterMember is a validated, normalized participant ready to be inserted
// as part of a team registration. The Leader flag is translated by each
// repository into its own role representation.
type RosterMember struct {
	FullName string
	Email    string
	Phone    string
	Branch   Branch
	Section  Section
	Year     Year
	Leader   bool
}

// TeamListing is the operator-facing projection of a team. Derived columns
// only, computed at query time from the participants relation.
type TeamListing struct {
	ID                int       `json:"id"`
	Name              string    `json:"team_name"`
	LeaderName        string    `json:"leader_name"`
	ParticipantsCount int       `json:"participants_count"`
	ParticipantNames  string    `json:"participants_names"`
	CreatedAt         time.Time `json:"created_at"`
}
