package customevents

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
	r.Route("/custom-events", func(cr chi.Router) {
		cr.Get("/", listCustomEventsHandler(svc))
		cr.Post("/", createCustomEventHandler(svc))
		cr.Get("/{customEventID}", getCustomEventHandler(svc))
		cr.Put("/{customEventID}", updateCustomEventHandler(svc))
		cr.Delete("/{customEventID}", deleteCustomEventHandler(svc))
	})
}

type createCustomEventRequest struct {
	Name string `json:"name"`
}

type updateCustomEventRequest struct {
	Name *string `json:"name"`
}

type customEventResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func listCustomEventsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]customEventResponse, 0, len(items))
		for _, ce := range items {
			out = append(out, toCustomEventResponse(ce))
		}

		httpjson.Write(w, http.StatusOK, out)
	}
}

func createCustomEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req createCustomEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		ce, err := svc.Create(r.Context(), claims.UserID, CreateInput{Name: req.Name})
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toCustomEventResponse(ce))
	}
}

func getCustomEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		ce, err := svc.Get(r.Context(), claims.UserID, chi.URLParam(r, "customEventID"))
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toCustomEventResponse(ce))
	}
}

func updateCustomEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req updateCustomEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		ce, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "customEventID"), UpdateInput{Name: req.Name})
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toCustomEventResponse(ce))
	}
}

func deleteCustomEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "customEventID")); err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toCustomEventResponse(ce CustomEvent) customEventResponse {
	return customEventResponse{
		ID:        ce.ID,
		UserID:    ce.UserID,
		Name:      ce.Name,
		CreatedAt: ce.CreatedAt,
		UpdatedAt: ce.UpdatedAt,
	}
}
