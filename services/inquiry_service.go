package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nexora-labs/website-backend/models"
	"github.com/nexora-labs/website-backend/repositories"
)

type CpuInquiryInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	CpuModel string `json:"cpu_model"`
	Quantity int    `json:"quantity"`
	RAM      string `json:"ram"`
	Storage  string `json:"storage"`
	Message  string `json:"message"`
}

type InquiryService interface {
	SubmitInquiry(ctx context.Context, input CpuInquiryInput) (*models.CpuInquiry, error)
	GetInquiry(ctx context.Context, id int) (*models.CpuInquiry, error)
	ListInquiries(ctx context.Context, search, cpuModel string) ([]models.CpuInquiry, error)
}

type inquiryService struct {
	inquiries repositories.InquiryRepository
}

func NewInquiryService(inquiries repositories.InquiryRepository) InquiryService {
	return &inquiryService{inquiries: inquiries}
}

func (s *inquiryService) SubmitInquiry(ctx context.Context, input CpuInquiryInput) (*models.CpuInquiry, error) {
	ve := &ValidationError{}
	if strings.TrimSpace(input.FullName) == "" {
		ve.add("full_name", "full name is required")
	}
	if !validEmail(strings.TrimSpace(input.Email)) {
		ve.add("email", "a valid email address is required")
	}
	if !validPhone(input.Phone) {
		ve.add("phone", "phone must contain exactly 10 digits")
	}
	if strings.TrimSpace(input.CpuModel) == "" {
		ve.add("cpu_model", "cpu model is required")
	}
	if input.Quantity < 1 {
		ve.add("quantity", "quantity must be at least 1")
	}
	if !ve.empty() {
		return nil, ve
	}

	inq := &models.CpuInquiry{
		FullName: strings.TrimSpace(input.FullName),
		Email:    strings.TrimSpace(input.Email),
		Phone:    input.Phone,
		CpuModel: strings.TrimSpace(input.CpuModel),
		Quantity: input.Quantity,
		RAM:      strings.TrimSpace(input.RAM),
		Storage:  strings.TrimSpace(input.Storage),
		Message:  strings.TrimSpace(input.Message),
	}
	if err := s.inquiries.Create(ctx, inq); err != nil {
		return nil, fmt.Errorf("failed to save cpu inquiry: %w", err)
	}
	return inq, nil
}

func (s *inquiryService) GetInquiry(ctx context.Context, id int) (*models.CpuInquiry, error) {
	inq, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInquiryNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cpu inquiry %d: %w", id, err)
	}
	return inq, nil
}

func (s *inquiryService) ListInquiries(ctx context.Context, search, cpuModel string) ([]models.CpuInquiry, error) {
	inquiries, err := s.inquiries.List(ctx, search, cpuModel)
	if err != nil {
		return nil, fmt.Errorf("failed to list cpu inquiries: %w", err)
	}
	return inquiries, nil
}
