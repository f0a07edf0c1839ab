package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nexora-labs/website-backend/models"
	"github.com/nexora-labs/website-backend/repositories"
	"github.com/nexora-labs/website-backend/storage"
)

type CommunityItemInput struct {
	Section      string `json:"section"`
	ItemType     string `json:"item_type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Participants *int   `json:"participants"`
}

type CommunityService interface {
	ListItems(ctx context.Context, section, itemType string) ([]models.CommunityItem, error)
	AddItem(ctx context.Context, input CommunityItemInput, image *FileUpload) (*models.CommunityItem, error)
	DeleteItem(ctx context.Context, id int) error
}

type communityService struct {
	community repositories.CommunityRepository
	uploader  storage.FileUploader
}

func NewCommunityService(community repositories.CommunityRepository, uploader storage.FileUploader) CommunityService {
	return &communityService{
		community: community,
		uploader:  uploader,
	}
}

func (s *communityService) ListItems(ctx context.Context, section, itemType string) ([]models.CommunityItem, error) {
	ve := &ValidationError{}
	filter := repositories.CommunityFilter{}
	if section != "" {
		sec := models.CommunitySection(section)
		if !sec.Valid() {
			ve.add("section", "section must be one of giveback, general")
		}
		filter.Section = &sec
	}
	if itemType != "" {
		it := models.CommunityItemType(itemType)
		if !it.Valid() {
			ve.add("item_type", "item type must be one of gallery, workshop")
		}
		filter.ItemType = &it
	}
	if !ve.empty() {
		return nil, ve
	}

	items, err := s.community.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list community items: %w", err)
	}
	for i := range items {
		if items[i].ImageKey != nil {
			populateFileURL(&items[i].ImageURL, *items[i].ImageKey, s.uploader)
		}
	}
	return items, nil
}

func (s *communityService) AddItem(ctx context.Context, input CommunityItemInput, image *FileUpload) (*models.CommunityItem, error) {
	ve := &ValidationError{}
	section := models.CommunitySection(input.Section)
	if !section.Valid() {
		ve.add("section", "section must be one of giveback, general")
	}
	itemType := models.CommunityItemType(input.ItemType)
	if !itemType.Valid() {
		ve.add("item_type", "item type must be one of gallery, workshop")
	}
	if strings.TrimSpace(input.Title) == "" {
		ve.add("title", "title is required")
	}

	item := &models.CommunityItem{
		Section:     section,
		ItemType:    itemType,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
	}

	switch itemType {
	case models.CommunityItemWorkshop:
		if _, err := time.Parse(dateLayout, input.Date); err != nil {
			ve.add("date", "workshop date must be in YYYY-MM-DD format")
		}
		status := models.WorkshopStatus(input.Status)
		if !status.Valid() {
			ve.add("status", "status must be one of completed, upcoming")
		}
		if input.Participants != nil && *input.Participants < 0 {
			ve.add("participants", "participants must not be negative")
		}
		if image != nil {
			ve.add("image", "workshop items do not take an image")
		}
		item.Date = input.Date
		item.Status = status
		item.Participants = input.Participants
	case models.CommunityItemGallery:
		if image == nil {
			ve.add("image", "gallery items require an image")
		}
		if input.Date != "" || input.Status != "" || input.Participants != nil {
			ve.add("item_type", "gallery items do not take workshop fields")
		}
	}
	if !ve.empty() {
		return nil, ve
	}

	if image != nil {
		if verr := validateUpload("image", image.Filename, image.Size, imageExtensions...); verr != nil {
			return nil, verr
		}
		key := "give-gallery/" + sanitizeFilename(image.Filename)
		contentType := image.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		if _, err := s.uploader.Upload(ctx, key, contentType, image.Content); err != nil {
			return nil, fmt.Errorf("failed to store community image: %w", err)
		}
		item.ImageKey = &key
	}

	if err := s.community.Create(ctx, item); err != nil {
		if item.ImageKey != nil {
			_ = s.uploader.Delete(ctx, *item.ImageKey)
		}
		return nil, fmt.Errorf("failed to save community item: %w", err)
	}

	if item.ImageKey != nil {
		populateFileURL(&item.ImageURL, *item.ImageKey, s.uploader)
	}
	return item, nil
}

func (s *communityService) DeleteItem(ctx context.Context, id int) error {
	item, err := s.community.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCommunityItemNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load community item %d: %w", id, err)
	}

	if err := s.community.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCommunityItemNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete community item %d: %w", id, err)
	}
	if item.ImageKey != nil && *item.ImageKey != "" {
		_ = s.uploader.Delete(ctx, *item.ImageKey)
	}
	return nil
}
