package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

const (
	jwtClaimAdminID = "admin_id"
	jwtClaimEmail   = "email"
)

func contextWithAdminClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	return context.WithValue(ctx, adminContextKey, claims)
}

func GetAdminIDFromContext(ctx context.Context) (int, error) {
	claims, ok := ctx.Value(adminContextKey).(jwt.MapClaims)
	if !ok {
		return 0, errors.New("admin claims not found in context or invalid type")
	}

	idClaim, ok := claims[jwtClaimAdminID]
	if !ok {
		return 0, fmt.Errorf("missing %q claim in token", jwtClaimAdminID)
	}

	idFloat, ok := idClaim.(float64)
	if !ok || idFloat != float64(int(idFloat)) {
		return 0, fmt.Errorf("invalid %q claim in token", jwtClaimAdminID)
	}

	id := int(idFloat)
	if id <= 0 {
		return 0, fmt.Errorf("invalid admin ID value in %q claim: %d", jwtClaimAdminID, id)
	}
	return id, nil
}

func GetAdminEmailFromContext(ctx context.Context) (string, error) {
	claims, ok := ctx.Value(adminContextKey).(jwt.MapClaims)
	if !ok {
		return "", errors.New("admin claims not found in context or invalid type")
	}

	emailClaim, ok := claims[jwtClaimEmail]
	if !ok {
		return "", fmt.Errorf("missing %q claim in token", jwtClaimEmail)
	}

	email, ok := emailClaim.(string)
	if !ok || email == "" {
		return "", fmt.Errorf("invalid %q claim in token", jwtClaimEmail)
	}
	return email, nil
}
