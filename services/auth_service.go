package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexora-labs/website-backend/models"
	"github.com/nexora-labs/website-backend/repositories"
)

const tokenTTL = 24 * time.Hour

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (string, *models.AdminUser, error)
}

type authService struct {
	admins    repositories.AdminUserRepository
	jwtSecret string
}

func NewAuthService(admins repositories.AdminUserRepository, jwtSecret string) AuthService {
	return &authService{
		admins:    admins,
		jwtSecret: jwtSecret,
	}
}

// Login verifies admin credentials and issues a signed token. Unknown emails
// and bad passwords both surface as ErrAuthInvalidCredentials.
func (s *authService) Login(ctx context.Context, input LoginInput) (string, *models.AdminUser, error) {
	ve := &ValidationError{}
	email := strings.TrimSpace(input.Email)
	if !validEmail(email) {
		ve.add("email", "a valid email address is required")
	}
	if input.Password == "" {
		ve.add("password", "password is required")
	}
	if !ve.empty() {
		return "", nil, ve
	}

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminUserNotFound) {
			return "", nil, ErrAuthInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up admin user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return "", nil, ErrAuthInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, admin, nil
}
