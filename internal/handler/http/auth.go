package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/user"
	"github.com/Aggron2k/nexus-hub-sub000/internal/handler/http/response"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/jwt"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/validator"
)

type AuthHandler interface {
	DevToken(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService jwt.Service
	userRepo   user.UserRepository
	enabled    bool
}

func NewAuthHandler(jwtService jwt.Service, userRepo user.UserRepository, enabled bool) AuthHandler {
	return &AuthHandlerImpl{
		jwtService: jwtService,
		userRepo:   userRepo,
		enabled:    enabled,
	}
}

type devTokenRequest struct {
	UserID string `json:"user_id"`
}

type devTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	Role         string `json:"role"`
}

// DevToken mints a token pair for an existing user. Identity lives in an
// external provider; this endpoint stands in for it outside production and
// is not mounted there.
func (h *AuthHandlerImpl) DevToken(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		response.NotFound(w, "Not found")
		return
	}

	var req devTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DevToken decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if !validator.IsValidUUID(req.UserID) {
		response.BadRequest(w, "user_id must be a valid UUID", nil)
		return
	}

	u, err := h.userRepo.GetByID(r.Context(), req.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	accessToken, expiresAt, err := h.jwtService.GenerateAccessToken(u.ID, u.Role)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	refreshToken, _, err := h.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, devTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Role:         string(u.Role),
	})
}
