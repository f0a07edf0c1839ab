package handlers

import (
	"net/http"
	"strings"

	"github.com/nexora-labs/website-backend/services"
)

type InquiryHandler struct {
	inquiryService services.InquiryService
}

func NewInquiryHandler(is services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: is}
}

func (h *InquiryHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var input services.CpuInquiryInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	inquiry, err := h.inquiryService.SubmitInquiry(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"inquiry": inquiry,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *InquiryHandler) GetInquiry(w http.ResponseWriter, r *http.Request) {
	inquiryID, err := getIDFromURL(r, "inquiryID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	inquiry, err := h.inquiryService.GetInquiry(r.Context(), inquiryID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"inquiry": inquiry,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *InquiryHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	cpuModel := strings.TrimSpace(r.URL.Query().Get("cpu_model"))

	inquiries, err := h.inquiryService.ListInquiries(r.Context(), search, cpuModel)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"inquiries": inquiries,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
