package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexora-labs/website-backend/models"
	"github.com/nexora-labs/website-backend/storage"
)

type fakeUploader struct {
	uploads   []string
	deletes   []string
	uploadErr error
	baseURL   string
}

func (f *fakeUploader) Upload(_ context.Context, key, _ string, _ io.Reader) (*storage.UploadResult, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads = append(f.uploads, key)
	return &storage.UploadResult{Key: key, Location: f.baseURL + "/" + key}, nil
}

func (f *fakeUploader) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return nil
}

func (f *fakeUploader) GetPublicURL(key string) string {
	if f.baseURL == "" {
		return ""
	}
	return f.baseURL + "/" + key
}

type fakeCareerRepo struct {
	createErr error
	created   []*models.CareerApplication
}

func (f *fakeCareerRepo) Create(_ context.Context, app *models.CareerApplication) error {
	if f.createErr != nil {
		return f.createErr
	}
	app.ID = len(f.created) + 1
	app.AppliedAt = time.Now()
	f.created = append(f.created, app)
	return nil
}

func (f *fakeCareerRepo) List(context.Context, string) ([]models.CareerApplication, error) {
	apps := make([]models.CareerApplication, 0, len(f.created))
	for _, a := range f.created {
		apps = append(apps, *a)
	}
	return apps, nil
}

func (f *fakeCareerRepo) Count(context.Context) (int, error) { return len(f.created), nil }

func careerInput() CareerApplicationInput {
	return CareerApplicationInput{
		FullName:      "Priya Sharma",
		Email:         "priya@example.com",
		Phone:         "9876543210",
		College:       "NIT Warangal",
		CGPA:          "8.9",
		YearOfPassing: 2026,
		Experience:    "Two internships",
		Skills:        "Go, SQL",
	}
}

func pdfUpload(name string, size int64) FileUpload {
	return FileUpload{
		Filename:    name,
		Size:        size,
		ContentType: "application/pdf",
		Content:     strings.NewReader("%PDF-1.4"),
	}
}

func TestSubmitApplication_Success(t *testing.T) {
	uploader := &fakeUploader{baseURL: "https://cdn.example.com"}
	repo := &fakeCareerRepo{}
	svc := NewCareerService(repo, uploader)

	app, err := svc.SubmitApplication(context.Background(), careerInput(), pdfUpload("resume.pdf", 2048))
	require.NoError(t, err)
	require.Len(t, uploader.uploads, 1)
	assert.True(t, strings.HasPrefix(app.ResumeKey, "resume/"))
	assert.True(t, strings.HasSuffix(app.ResumeKey, ".pdf"))
	require.NotNil(t, app.ResumeURL)
	assert.Equal(t, "https://cdn.example.com/"+app.ResumeKey, *app.ResumeURL)
}

func TestSubmitApplication_RejectsNonPDF(t *testing.T) {
	uploader := &fakeUploader{}
	svc := NewCareerService(&fakeCareerRepo{}, uploader)

	_, err := svc.SubmitApplication(context.Background(), careerInput(), pdfUpload("resume.docx", 2048))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "resume")
	assert.Empty(t, uploader.uploads)
}

func TestSubmitApplication_RejectsOversizedResume(t *testing.T) {
	uploader := &fakeUploader{}
	svc := NewCareerService(&fakeCareerRepo{}, uploader)

	_, err := svc.SubmitApplication(context.Background(), careerInput(), pdfUpload("resume.pdf", maxUploadSize+1))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, uploader.uploads)
}

func TestSubmitApplication_FieldValidation(t *testing.T) {
	uploader := &fakeUploader{}
	svc := NewCareerService(&fakeCareerRepo{}, uploader)

	input := careerInput()
	input.FullName = ""
	input.Phone = "123"
	input.YearOfPassing = 1900

	_, err := svc.SubmitApplication(context.Background(), input, pdfUpload("resume.pdf", 2048))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "full_name")
	assert.Contains(t, ve.Fields, "phone")
	assert.Contains(t, ve.Fields, "year_of_passing")
	assert.Empty(t, uploader.uploads)
}

func TestSubmitApplication_RemovesOrphanedObjectOnRepoFailure(t *testing.T) {
	uploader := &fakeUploader{}
	repo := &fakeCareerRepo{createErr: errors.New("insert failed")}
	svc := NewCareerService(repo, uploader)

	_, err := svc.SubmitApplication(context.Background(), careerInput(), pdfUpload("resume.pdf", 2048))
	require.Error(t, err)
	require.Len(t, uploader.uploads, 1)
	require.Len(t, uploader.deletes, 1)
	assert.Equal(t, uploader.uploads[0], uploader.deletes[0])
}

func TestListApplications_PopulatesResumeURLs(t *testing.T) {
	uploader := &fakeUploader{baseURL: "https://cdn.example.com"}
	repo := &fakeCareerRepo{}
	svc := NewCareerService(repo, uploader)

	_, err := svc.SubmitApplication(context.Background(), careerInput(), pdfUpload("resume.pdf", 2048))
	require.NoError(t, err)

	apps, err := svc.ListApplications(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.NotNil(t, apps[0].ResumeURL)
}
