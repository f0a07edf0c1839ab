package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nexora-labs/website-backend/models"
	"github.com/nexora-labs/website-backend/repositories"
)

type ContactMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactService interface {
	SubmitMessage(ctx context.Context, input ContactMessageInput) (*models.ContactMessage, error)
	ListMessages(ctx context.Context, search string) ([]models.ContactMessage, error)
}

type contactService struct {
	contacts repositories.ContactRepository
}

func NewContactService(contacts repositories.ContactRepository) ContactService {
	return &contactService{contacts: contacts}
}

func (s *contactService) SubmitMessage(ctx context.Context, input ContactMessageInput) (*models.ContactMessage, error) {
	ve := &ValidationError{}
	if strings.TrimSpace(input.Name) == "" {
		ve.add("name", "name is required")
	}
	if !validEmail(strings.TrimSpace(input.Email)) {
		ve.add("email", "a valid email address is required")
	}
	if !validPhone(input.Phone) {
		ve.add("phone", "phone must contain exactly 10 digits")
	}
	if strings.TrimSpace(input.Message) == "" {
		ve.add("message", "message is required")
	}
	if !ve.empty() {
		return nil, ve
	}

	msg := &models.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   input.Phone,
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
	}
	if err := s.contacts.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return msg, nil
}

func (s *contactService) ListMessages(ctx context.Context, search string) ([]models.ContactMessage, error) {
	messages, err := s.contacts.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}
