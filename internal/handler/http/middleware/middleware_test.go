package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aggron2k/nexus-hub-sub000/internal/domain/user"
	"github.com/Aggron2k/nexus-hub-sub000/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*chi.Mux, jwt.Service) {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(AuthRequired(jwtService.JWTAuth()))

		r.Get("/any", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireManager)
			r.Get("/managers-only", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})
	return r, jwtService
}

func doRequest(r *chi.Mux, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	r, jwtService := newTestRouter(t)

	t.Run("no token", func(t *testing.T) {
		rec := doRequest(r, "/any", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doRequest(r, "/any", "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh token rejected on access routes", func(t *testing.T) {
		token, _, err := jwtService.GenerateRefreshToken("user-1")
		require.NoError(t, err)

		rec := doRequest(r, "/any", token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid access token", func(t *testing.T) {
		token, _, err := jwtService.GenerateAccessToken("user-1", user.RoleEmployee)
		require.NoError(t, err)

		rec := doRequest(r, "/any", token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireManager(t *testing.T) {
	r, jwtService := newTestRouter(t)

	cases := []struct {
		role       user.Role
		wantStatus int
	}{
		{user.RoleEmployee, http.StatusForbidden},
		{user.RoleManager, http.StatusOK},
		{user.RoleAdmin, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			token, _, err := jwtService.GenerateAccessToken("user-1", tc.role)
			require.NoError(t, err)

			rec := doRequest(r, "/managers-only", token)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
