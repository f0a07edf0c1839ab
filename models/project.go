package models

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusUpcoming  ProjectStatus = "upcoming"
	ProjectStatusCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusUpcoming, ProjectStatusCompleted:
		return true
	}
	return false
}

type Project struct {
	ID          int           `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Client      string        `json:"client" db:"client"`
	Description string        `json:"description" db:"description"`
	Status      ProjectStatus `json:"status" db:"status"`
	Progress    int           `json:"progress" db:"progress"`
	StartDate   time.Time     `json:"start_date" db:"start_date"`
	EndDate     time.Time     `json:"end_date" db:"end_date"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}
