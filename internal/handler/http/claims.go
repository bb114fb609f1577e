package http

import (
	"errors"
	"net/http"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

var errMissingClaims = errors.New("missing token claims")

// currentUser extracts the acting user's id and role from the verified token.
func currentUser(r *http.Request) (string, user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", errMissingClaims
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", "", errMissingClaims
	}

	return userID, user.Role(roleStr), nil
}
