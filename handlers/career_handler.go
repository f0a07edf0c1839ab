package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/nexora-labs/website-backend/services"
)

const maxMultipartMemory = 32 << 20

type CareerHandler struct {
	careerService services.CareerService
}

func NewCareerHandler(cs services.CareerService) *CareerHandler {
	return &CareerHandler{careerService: cs}
}

func (h *CareerHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		badRequestResponse(w, r, errors.New("request must be multipart/form-data"))
		return
	}

	yearOfPassing, _ := strconv.Atoi(r.FormValue("year_of_passing"))
	input := services.CareerApplicationInput{
		FullName:      r.FormValue("full_name"),
		Email:         r.FormValue("email"),
		Phone:         r.FormValue("phone"),
		College:       r.FormValue("college"),
		CGPA:          r.FormValue("cgpa"),
		YearOfPassing: yearOfPassing,
		Experience:    r.FormValue("experience"),
		Skills:        r.FormValue("skills"),
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		badRequestResponse(w, r, errors.New("resume file is required"))
		return
	}
	defer file.Close()

	resume := services.FileUpload{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}

	app, err := h.careerService.SubmitApplication(r.Context(), input, resume)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"application": app,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CareerHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	apps, err := h.careerService.ListApplications(r.Context(), search)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"applications": apps,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
