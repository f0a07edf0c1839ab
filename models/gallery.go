package models

import "time"

type GalleryCategory string

const (
	GalleryCategoryEvents       GalleryCategory = "Events"
	GalleryCategoryActivities   GalleryCategory = "Activities"
	GalleryCategoryAchievements GalleryCategory = "Achievements"
	GalleryCategoryOffice       GalleryCategory = "Office"
)

func (c GalleryCategory) Valid() bool {
	switch c {
	case GalleryCategoryEvents, GalleryCategoryActivities, GalleryCategoryAchievements, GalleryCategoryOffice:
		return true
	}
	return false
}

type GalleryImage struct {
	ID        int             `json:"id" db:"id"`
	Title     string          `json:"title" db:"title"`
	Category  GalleryCategory `json:"category" db:"category"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`

	ImageKey string  `json:"-" db:"image_key"`
	ImageURL *string `json:"image,omitempty" db:"-"`
}
