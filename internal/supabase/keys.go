package supabase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Key roles understood by the backend
const (
	RoleAnon        = "anon"
	RoleServiceRole = "service_role"
)

// KeyRole reports the role a backend key grants. Legacy keys are JWTs whose
// "role" claim is read without verifying the signature; the backend is the
// one that verifies them.
func KeyRole(key string) (string, error) {
	switch {
	case key == "":
		return "", errors.New("empty key")
	case strings.HasPrefix(key, "sb_secret_"):
		return RoleServiceRole, nil
	case strings.HasPrefix(key, "sb_publishable_"):
		return RoleAnon, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return "", fmt.Errorf("parse key: %w", err)
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return "", errors.New("key carries no role claim")
	}
	return role, nil
}
