package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/nexora-labs/website-backend/services"
)

type ProjectHandler struct {
	projectService services.ProjectService
}

func NewProjectHandler(ps services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))

	projects, err := h.projectService.ListProjects(r.Context(), status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"projects": projects,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := getIDFromURL(r, "projectID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	project, err := h.projectService.GetProject(r.Context(), projectID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"project": project,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var input services.ProjectInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	project, err := h.projectService.CreateProject(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"project": project,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := getIDFromURL(r, "projectID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ProjectInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	project, err := h.projectService.UpdateProject(r.Context(), projectID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"project": project,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := getIDFromURL(r, "projectID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.projectService.DeleteProject(r.Context(), projectID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	slog.Info("project deleted", "id", projectID, "admin", adminActor(r))

	w.WriteHeader(http.StatusNoContent)
}
