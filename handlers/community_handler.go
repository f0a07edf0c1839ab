package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/nexora-labs/website-backend/services"
)

type CommunityHandler struct {
	communityService services.CommunityService
}

func NewCommunityHandler(cs services.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: cs}
}

func (h *CommunityHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	section := strings.TrimSpace(r.URL.Query().Get("section"))
	itemType := strings.TrimSpace(r.URL.Query().Get("item_type"))

	items, err := h.communityService.ListItems(r.Context(), section, itemType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"items": items,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CommunityHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		badRequestResponse(w, r, errors.New("request must be multipart/form-data"))
		return
	}

	input := services.CommunityItemInput{
		Section:     r.FormValue("section"),
		ItemType:    r.FormValue("item_type"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Date:        r.FormValue("date"),
		Status:      r.FormValue("status"),
	}
	if raw := r.FormValue("participants"); raw != "" {
		participants, err := strconv.Atoi(raw)
		if err != nil {
			badRequestResponse(w, r, errors.New("participants must be a number"))
			return
		}
		input.Participants = &participants
	}

	var image *services.FileUpload
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		image = &services.FileUpload{
			Filename:    header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		badRequestResponse(w, r, err)
		return
	}

	item, err := h.communityService.AddItem(r.Context(), input, image)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"item": item,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CommunityHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := getIDFromURL(r, "itemID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.communityService.DeleteItem(r.Context(), itemID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	slog.Info("community item deleted", "id", itemID, "admin", adminActor(r))

	w.WriteHeader(http.StatusNoContent)
}
