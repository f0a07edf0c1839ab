package models

import "time"

type CareerApplication struct {
	ID            int       `json:"id" db:"id"`
	FullName      string    `json:"full_name" db:"full_name"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone" db:"phone"`
	College       string    `json:"college" db:"college"`
	CGPA          string    `json:"cgpa" db:"cgpa"`
	YearOfPassing int       `json:"year_of_passing" db:"year_of_passing"`
	Experience    string    `json:"experience" db:"experience"`
	Skills        string    `json:"skills" db:"skills"`
	AppliedAt     time.Time `json:"applied_at" db:"applied_at"`

	ResumeKey string  `json:"-" db:"resume_key"`
	ResumeURL *string `json:"resume_url,omitempty" db:"-"`
}
