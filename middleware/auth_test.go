package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedEndpoint(t *testing.T) (http.Handler, *int) {
	t.Helper()
	var gotAdminID int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetAdminIDFromContext(r.Context())
		require.NoError(t, err)
		gotAdminID = id
		w.WriteHeader(http.StatusOK)
	})
	return Authenticate(testSecret)(handler), &gotAdminID
}

func TestAuthenticate_ValidToken(t *testing.T) {
	handler, gotAdminID := protectedEndpoint(t)

	token := signToken(t, testSecret, jwt.MapClaims{
		"admin_id": 42,
		"email":    "ops@example.com",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, *gotAdminID)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	handler, _ := protectedEndpoint(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	handler, _ := protectedEndpoint(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	handler, _ := protectedEndpoint(t)

	token := signToken(t, testSecret, jwt.MapClaims{
		"admin_id": 42,
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetAdminEmailFromContext(t *testing.T) {
	ctx := contextWithAdminClaims(context.Background(), jwt.MapClaims{
		"admin_id": float64(42),
		"email":    "ops@example.com",
	})

	email, err := GetAdminEmailFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", email)

	_, err = GetAdminEmailFromContext(context.Background())
	assert.Error(t, err)

	_, err = GetAdminEmailFromContext(contextWithAdminClaims(context.Background(), jwt.MapClaims{
		"admin_id": float64(42),
	}))
	assert.Error(t, err)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	handler, _ := protectedEndpoint(t)

	token := signToken(t, "other-secret", jwt.MapClaims{
		"admin_id": 42,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
