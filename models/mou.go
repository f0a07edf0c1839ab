package models

import "time"

type MOUCategory string

const (
	MOUCategoryCloud      MOUCategory = "cloud"
	MOUCategoryEducation  MOUCategory = "education"
	MOUCategorySecurity   MOUCategory = "security"
	MOUCategoryInnovation MOUCategory = "innovation"
)

func (c MOUCategory) Valid() bool {
	switch c {
	case MOUCategoryCloud, MOUCategoryEducation, MOUCategorySecurity, MOUCategoryInnovation:
		return true
	}
	return false
}

type MOU struct {
	ID          int         `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Category    MOUCategory `json:"category" db:"category"`
	Description string      `json:"description" db:"description"`
	Highlights  []string    `json:"highlights" db:"highlights"`
	Icon        string      `json:"icon" db:"icon"`
	StartDate   time.Time   `json:"start_date" db:"start_date"`
	IsActive    bool        `json:"is_active" db:"is_active"`

	PDFKey string  `json:"-" db:"pdf_key"`
	PDFURL *string `json:"pdf_url,omitempty" db:"-"`
}
