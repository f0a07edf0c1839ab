package handlers

import (
	"net/http"
	"strings"

	"github.com/nexora-labs/website-backend/services"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(cs services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

func (h *ContactHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var input services.ContactMessageInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	msg, err := h.contactService.SubmitMessage(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"message": msg,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ContactHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	messages, err := h.contactService.ListMessages(r.Context(), search)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"messages": messages,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
