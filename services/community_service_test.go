package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexora-labs/website-backend/models"
	"github.com/nexora-labs/website-backend/repositories"
)

type fakeCommunityRepo struct {
	items []*models.CommunityItem
}

func (f *fakeCommunityRepo) Create(_ context.Context, item *models.CommunityItem) error {
	item.ID = len(f.items) + 1
	item.CreatedAt = time.Now()
	f.items = append(f.items, item)
	return nil
}

func (f *fakeCommunityRepo) GetByID(_ context.Context, id int) (*models.CommunityItem, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, repositories.ErrCommunityItemNotFound
}

func (f *fakeCommunityRepo) List(_ context.Context, filter repositories.CommunityFilter) ([]models.CommunityItem, error) {
	out := make([]models.CommunityItem, 0, len(f.items))
	for _, item := range f.items {
		if filter.Section != nil && item.Section != *filter.Section {
			continue
		}
		if filter.ItemType != nil && item.ItemType != *filter.ItemType {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (f *fakeCommunityRepo) Delete(_ context.Context, id int) error {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repositories.ErrCommunityItemNotFound
}

func imageUpload(name string) *FileUpload {
	return &FileUpload{
		Filename:    name,
		Size:        1024,
		ContentType: "image/jpeg",
		Content:     strings.NewReader("fake image bytes"),
	}
}

func TestAddItem_WorkshopVariant(t *testing.T) {
	repo := &fakeCommunityRepo{}
	svc := NewCommunityService(repo, &fakeUploader{})

	participants := 40
	item, err := svc.AddItem(context.Background(), CommunityItemInput{
		Section:      "general",
		ItemType:     "workshop",
		Title:        "Intro to Cloud",
		Date:         "2026-03-14",
		Status:       "upcoming",
		Participants: &participants,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.CommunityItemWorkshop, item.ItemType)
	assert.Equal(t, models.WorkshopStatusUpcoming, item.Status)
	assert.Nil(t, item.ImageKey)
}

func TestAddItem_WorkshopRequiresDateAndStatus(t *testing.T) {
	svc := NewCommunityService(&fakeCommunityRepo{}, &fakeUploader{})

	_, err := svc.AddItem(context.Background(), CommunityItemInput{
		Section:  "general",
		ItemType: "workshop",
		Title:    "Intro to Cloud",
	}, nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "date")
	assert.Contains(t, ve.Fields, "status")
}

func TestAddItem_WorkshopRejectsImage(t *testing.T) {
	svc := NewCommunityService(&fakeCommunityRepo{}, &fakeUploader{})

	_, err := svc.AddItem(context.Background(), CommunityItemInput{
		Section:  "general",
		ItemType: "workshop",
		Title:    "Intro to Cloud",
		Date:     "2026-03-14",
		Status:   "upcoming",
	}, imageUpload("photo.jpg"))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "image")
}

func TestAddItem_GalleryVariant(t *testing.T) {
	uploader := &fakeUploader{baseURL: "https://cdn.example.com"}
	svc := NewCommunityService(&fakeCommunityRepo{}, uploader)

	item, err := svc.AddItem(context.Background(), CommunityItemInput{
		Section:  "giveback",
		ItemType: "gallery",
		Title:    "School Drive",
	}, imageUpload("school drive.jpg"))
	require.NoError(t, err)
	require.NotNil(t, item.ImageKey)
	assert.Equal(t, "give-gallery/school_drive.jpg", *item.ImageKey)
	require.NotNil(t, item.ImageURL)
}

func TestAddItem_GalleryRequiresImage(t *testing.T) {
	svc := NewCommunityService(&fakeCommunityRepo{}, &fakeUploader{})

	_, err := svc.AddItem(context.Background(), CommunityItemInput{
		Section:  "giveback",
		ItemType: "gallery",
		Title:    "School Drive",
	}, nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "image")
}

func TestAddItem_GalleryRejectsWorkshopFields(t *testing.T) {
	svc := NewCommunityService(&fakeCommunityRepo{}, &fakeUploader{})

	_, err := svc.AddItem(context.Background(), CommunityItemInput{
		Section:  "giveback",
		ItemType: "gallery",
		Title:    "School Drive",
		Date:     "2026-03-14",
	}, imageUpload("photo.jpg"))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "item_type")
}

func TestDeleteItem_RemovesStoredImage(t *testing.T) {
	uploader := &fakeUploader{}
	repo := &fakeCommunityRepo{}
	svc := NewCommunityService(repo, uploader)

	item, err := svc.AddItem(context.Background(), CommunityItemInput{
		Section:  "giveback",
		ItemType: "gallery",
		Title:    "School Drive",
	}, imageUpload("photo.jpg"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(context.Background(), item.ID))
	require.Len(t, uploader.deletes, 1)
	assert.Equal(t, *item.ImageKey, uploader.deletes[0])

	assert.ErrorIs(t, svc.DeleteItem(context.Background(), item.ID), ErrNotFound)
}

func TestListItems_Filters(t *testing.T) {
	repo := &fakeCommunityRepo{}
	svc := NewCommunityService(repo, &fakeUploader{})

	_, err := svc.AddItem(context.Background(), CommunityItemInput{
		Section: "giveback", ItemType: "gallery", Title: "Drive",
	}, imageUpload("a.jpg"))
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), CommunityItemInput{
		Section: "general", ItemType: "workshop", Title: "Workshop",
		Date: "2026-03-14", Status: "completed",
	}, nil)
	require.NoError(t, err)

	items, err := svc.ListItems(context.Background(), "giveback", "")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = svc.ListItems(context.Background(), "", "workshop")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.ListItems(context.Background(), "bogus", "")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}
