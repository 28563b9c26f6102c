package dogs

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"barkly-backend/internal/middleware"
	"barkly-backend/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(svc))
		dr.Post("/", createDogHandler(svc))
		dr.Get("/{dogID}", getDogHandler(svc))
		dr.Put("/{dogID}", updateDogHandler(svc))
		dr.Delete("/{dogID}", deleteDogHandler(svc))
	})
}

type createDogRequest struct {
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

type updateDogRequest struct {
	Name           *string `json:"name"`
	ProfilePicture *string `json:"profile_picture"`
}

type dogResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// listDogsHandler godoc
// @Summary Listar perros del usuario
// @Tags dogs
// @Produce json
// @Success 200 {array} dogResponse
// @Failure 401 {string} string "Not authenticated"
// @Router /dogs [get]
func listDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		items, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}

		httpjson.Write(w, http.StatusOK, out)
	}
}

// createDogHandler godoc
// @Summary Crear perro
// @Tags dogs
// @Accept json
// @Produce json
// @Param payload body createDogRequest true "Datos del perro"
// @Success 201 {object} dogResponse
// @Failure 400 {string} string "invalid json / name is required"
// @Failure 401 {string} string "Not authenticated"
// @Router /dogs [post]
func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req createDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		d, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:           req.Name,
			ProfilePicture: req.ProfilePicture,
		})
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toDogResponse(d))
	}
}

// getDogHandler godoc
// @Summary Obtener un perro
// @Tags dogs
// @Produce json
// @Param dogID path string true "ID del perro"
// @Success 200 {object} dogResponse
// @Failure 404 {string} string "Dog not found"
// @Router /dogs/{dogID} [get]
func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		d, err := svc.Get(r.Context(), claims.UserID, chi.URLParam(r, "dogID"))
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toDogResponse(d))
	}
}

// updateDogHandler godoc
// @Summary Actualizar perro
// @Description Update parcial: solo los campos presentes en el body se aplican.
// @Tags dogs
// @Accept json
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param payload body updateDogRequest true "Campos a actualizar"
// @Success 200 {object} dogResponse
// @Failure 404 {string} string "Dog not found"
// @Router /dogs/{dogID} [put]
func updateDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req updateDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		d, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "dogID"), UpdateInput{
			Name:           req.Name,
			ProfilePicture: req.ProfilePicture,
		})
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toDogResponse(d))
	}
}

// deleteDogHandler godoc
// @Summary Borrar perro
// @Description Borra el perro y en cascada sus events, vet visits y medicine events.
// @Tags dogs
// @Param dogID path string true "ID del perro"
// @Success 204
// @Failure 404 {string} string "Dog not found"
// @Router /dogs/{dogID} [delete]
func deleteDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "dogID")); err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:             d.ID,
		UserID:         d.UserID,
		Name:           d.Name,
		ProfilePicture: d.ProfilePicture,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
