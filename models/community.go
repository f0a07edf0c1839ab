package models

import "time"

type CommunitySection string

const (
	CommunitySectionGiveback CommunitySection = "giveback"
	CommunitySectionGeneral  CommunitySection = "general"
)

func (s CommunitySection) Valid() bool {
	return s == CommunitySectionGiveback || s == CommunitySectionGeneral
}

type CommunityItemType string

const (
	CommunityItemGallery  CommunityItemType = "gallery"
	CommunityItemWorkshop CommunityItemType = "workshop"
)

func (t CommunityItemType) Valid() bool {
	return t == CommunityItemGallery || t == CommunityItemWorkshop
}

type WorkshopStatus string

const (
	WorkshopStatusCompleted WorkshopStatus = "completed"
	WorkshopStatusUpcoming  WorkshopStatus = "upcoming"
)

func (s WorkshopStatus) Valid() bool {
	return s == WorkshopStatusCompleted || s == WorkshopStatusUpcoming
}

// CommunityItem is a tagged variant: workshop items carry date/status/
// participants, gallery items carry an image. ItemType selects the variant.
type CommunityItem struct {
	ID          int               `json:"id" db:"id"`
	Section     CommunitySection  `json:"section" db:"section"`
	ItemType    CommunityItemType `json:"item_type" db:"item_type"`
	Title       string            `json:"title" db:"title"`
	Description string            `json:"description" db:"description"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`

	// Workshop only.
	Date         string         `json:"date,omitempty" db:"date"`
	Status       WorkshopStatus `json:"status,omitempty" db:"status"`
	Participants *int           `json:"participants,omitempty" db:"participants"`

	// Gallery only.
	ImageKey *string `json:"-" db:"image_key"`
	ImageURL *string `json:"image,omitempty" db:"-"`
}
