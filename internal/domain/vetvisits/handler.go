package vetvisits

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/events"
	"barkly-backend/internal/middleware"
	"barkly-backend/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vet-visits", func(vr chi.Router) {
		vr.Get("/", listVetVisitsHandler(svc))
		vr.Post("/", createVetVisitHandler(svc))
		vr.Get("/{visitID}", getVetVisitHandler(svc))
		vr.Put("/{visitID}", updateVetVisitHandler(svc))
		vr.Delete("/{visitID}", deleteVetVisitHandler(svc))
	})
}

type createVetVisitRequest struct {
	DogID     string           `json:"dog_id"`
	VetID     string           `json:"vet_id"`
	Date      string           `json:"date"`
	TimeOfDay events.TimeOfDay `json:"time_of_day"`
	Notes     string           `json:"notes"`
}

type updateVetVisitRequest struct {
	DogID     *string           `json:"dog_id"`
	VetID     *string           `json:"vet_id"`
	Date      *string           `json:"date"`
	TimeOfDay *events.TimeOfDay `json:"time_of_day"`
	Notes     *string           `json:"notes"`
}

type vetVisitResponse struct {
	ID        string           `json:"id"`
	DogID     string           `json:"dog_id"`
	VetID     string           `json:"vet_id"`
	Date      time.Time        `json:"date"`
	TimeOfDay events.TimeOfDay `json:"time_of_day"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func listVetVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		items, err := svc.List(r.Context(), claims.UserID, r.URL.Query().Get("dog_id"))
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		out := make([]vetVisitResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVetVisitResponse(v))
		}

		httpjson.Write(w, http.StatusOK, out)
	}
}

func createVetVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req createVetVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		date, err := events.ParseDateTime(req.Date)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid date format")
			return
		}

		v, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			DogID:     req.DogID,
			VetID:     req.VetID,
			Date:      date,
			TimeOfDay: req.TimeOfDay,
			Notes:     req.Notes,
		})
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toVetVisitResponse(v))
	}
}

func getVetVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		v, err := svc.Get(r.Context(), claims.UserID, chi.URLParam(r, "visitID"))
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toVetVisitResponse(v))
	}
}

func updateVetVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req updateVetVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := UpdateInput{
			DogID:     req.DogID,
			VetID:     req.VetID,
			TimeOfDay: req.TimeOfDay,
			Notes:     req.Notes,
		}
		if req.Date != nil {
			date, err := events.ParseDateTime(*req.Date)
			if err != nil {
				httpjson.WriteErr(w, apperr.InvalidInputf("Invalid date format"))
				return
			}
			in.Date = &date
		}

		v, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "visitID"), in)
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toVetVisitResponse(v))
	}
}

func deleteVetVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "visitID")); err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toVetVisitResponse(v VetVisit) vetVisitResponse {
	return vetVisitResponse{
		ID:        v.ID,
		DogID:     v.DogID,
		VetID:     v.VetID,
		Date:      v.Date,
		TimeOfDay: v.TimeOfDay,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
