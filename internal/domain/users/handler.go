package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/middleware"
	"barkly-backend/internal/platform/httpjson"
	"barkly-backend/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, svc *Service, identity auth.IdentityProvider, issuer auth.Issuer) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/google", googleAuthHandler(svc, identity, issuer))
		ar.Get("/me", meHandler(svc))
		ar.Delete("/me", deleteAccountHandler(svc))
	})
}

type googleAuthRequest struct {
	Token string `json:"token"`
}

type userResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type authResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

// googleAuthHandler godoc
// @Summary Login con Google
// @Description Verifica el id_token de Google, upserta el usuario y devuelve el bearer token del backend.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body googleAuthRequest true "id_token emitido por Google Sign-In"
// @Success 200 {object} authResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "Invalid Google token"
// @Router /auth/google [post]
func googleAuthHandler(svc *Service, identity auth.IdentityProvider, issuer auth.Issuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if identity == nil || issuer == nil {
			// Modo dev: no hay proveedor configurado, se usa X-Debug-User-ID.
			httpjson.Error(w, http.StatusNotImplemented, "Google auth not configured")
			return
		}

		var req googleAuthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if strings.TrimSpace(req.Token) == "" {
			httpjson.Error(w, http.StatusBadRequest, "token is required")
			return
		}

		claims, err := identity.VerifyIDToken(r.Context(), req.Token)
		if err != nil {
			httpjson.Error(w, http.StatusUnauthorized, "Invalid Google token")
			return
		}

		u, err := svc.Upsert(r.Context(), claims)
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		token, err := issuer.Issue(auth.Claims{
			UserID:  u.ID,
			Email:   u.Email,
			Name:    u.Name,
			Picture: u.Picture,
		})
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, authResponse{
			AccessToken: token,
			TokenType:   "bearer",
			User:        toUserResponse(u),
		})
	}
}

// meHandler godoc
// @Summary Usuario actual
// @Tags auth
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {string} string "Not authenticated"
// @Router /auth/me [get]
func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		u, err := svc.Get(r.Context(), claims.UserID)
		if errors.Is(err, apperr.ErrNotFound) {
			// Token vigente sin registro (primer acceso en modo dev):
			// materializamos el usuario desde los claims.
			u, err = svc.Upsert(r.Context(), claims)
		}
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toUserResponse(u))
	}
}

// deleteAccountHandler godoc
// @Summary Borrar cuenta
// @Description Borra el usuario y en cascada todo lo que posee.
// @Tags auth
// @Success 204
// @Failure 401 {string} string "Not authenticated"
// @Router /auth/me [delete]
func deleteAccountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		if err := svc.DeleteAccount(r.Context(), claims.UserID); err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Picture:   u.Picture,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
