package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/nexora-labs/website-backend/services"
)

type MOUHandler struct {
	mouService services.MOUService
}

func NewMOUHandler(ms services.MOUService) *MOUHandler {
	return &MOUHandler{mouService: ms}
}

func (h *MOUHandler) ListMOUs(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active"))

	mous, err := h.mouService.ListMOUs(r.Context(), category, activeOnly)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"mous": mous,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func mouInputFromForm(r *http.Request) services.MOUInput {
	isActive, _ := strconv.ParseBool(r.FormValue("is_active"))
	return services.MOUInput{
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		Highlights:  r.Form["highlights"],
		Icon:        r.FormValue("icon"),
		StartDate:   r.FormValue("start_date"),
		IsActive:    isActive,
	}
}

func (h *MOUHandler) CreateMOU(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		badRequestResponse(w, r, errors.New("request must be multipart/form-data"))
		return
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		badRequestResponse(w, r, errors.New("pdf file is required"))
		return
	}
	defer file.Close()

	pdf := services.FileUpload{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}

	mou, err := h.mouService.CreateMOU(r.Context(), mouInputFromForm(r), pdf)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"mou": mou,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MOUHandler) UpdateMOU(w http.ResponseWriter, r *http.Request) {
	mouID, err := getIDFromURL(r, "mouID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		badRequestResponse(w, r, errors.New("request must be multipart/form-data"))
		return
	}

	var pdf *services.FileUpload
	file, header, err := r.FormFile("pdf")
	if err == nil {
		defer file.Close()
		pdf = &services.FileUpload{
			Filename:    header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		badRequestResponse(w, r, err)
		return
	}

	mou, err := h.mouService.UpdateMOU(r.Context(), mouID, mouInputFromForm(r), pdf)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"mou": mou,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MOUHandler) DeleteMOU(w http.ResponseWriter, r *http.Request) {
	mouID, err := getIDFromURL(r, "mouID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.mouService.DeleteMOU(r.Context(), mouID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	slog.Info("mou deleted", "id", mouID, "admin", adminActor(r))

	w.WriteHeader(http.StatusNoContent)
}
