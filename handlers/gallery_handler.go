package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nexora-labs/website-backend/services"
)

type GalleryHandler struct {
	galleryService services.GalleryService
}

func NewGalleryHandler(gs services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: gs}
}

func (h *GalleryHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	images, err := h.galleryService.ListImages(r.Context(), category)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"images": images,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GalleryHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		badRequestResponse(w, r, errors.New("request must be multipart/form-data"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		badRequestResponse(w, r, errors.New("image file is required"))
		return
	}
	defer file.Close()

	image := services.FileUpload{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}

	img, err := h.galleryService.AddImage(r.Context(), r.FormValue("title"), r.FormValue("category"), image)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"image": img,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GalleryHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	imageID, err := getIDFromURL(r, "imageID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.galleryService.DeleteImage(r.Context(), imageID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	slog.Info("gallery image deleted", "id", imageID, "admin", adminActor(r))

	w.WriteHeader(http.StatusNoContent)
}
