package medicineevents

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
	r.Route("/medicine-events", func(mr chi.Router) {
		mr.Get("/", listMedicineEventsHandler(svc))
		mr.Post("/", createMedicineEventHandler(svc))
		mr.Get("/{medicineEventID}", getMedicineEventHandler(svc))
		mr.Put("/{medicineEventID}", updateMedicineEventHandler(svc))
		mr.Delete("/{medicineEventID}", deleteMedicineEventHandler(svc))
	})
}

type createMedicineEventRequest struct {
	DogID      string           `json:"dog_id"`
	MedicineID string           `json:"medicine_id"`
	Date       string           `json:"date"`
	TimeOfDay  events.TimeOfDay `json:"time_of_day"`
	Dosage     float64          `json:"dosage"`
	Notes      string           `json:"notes"`
}

type updateMedicineEventRequest struct {
	DogID      *string           `json:"dog_id"`
	MedicineID *string           `json:"medicine_id"`
	Date       *string           `json:"date"`
	TimeOfDay  *events.TimeOfDay `json:"time_of_day"`
	Dosage     *float64          `json:"dosage"`
	Notes      *string           `json:"notes"`
}

type medicineEventResponse struct {
	ID         string           `json:"id"`
	DogID      string           `json:"dog_id"`
	MedicineID string           `json:"medicine_id"`
	Date       time.Time        `json:"date"`
	TimeOfDay  events.TimeOfDay `json:"time_of_day"`
	Dosage     float64          `json:"dosage"`
	Notes      string           `json:"notes,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func listMedicineEventsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]medicineEventResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicineEventResponse(m))
		}

		httpjson.Write(w, http.StatusOK, out)
	}
}

func createMedicineEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req createMedicineEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		date, err := events.ParseDateTime(req.Date)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid date format")
			return
		}

		m, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			DogID:      req.DogID,
			MedicineID: req.MedicineID,
			Date:       date,
			TimeOfDay:  req.TimeOfDay,
			Dosage:     req.Dosage,
			Notes:      req.Notes,
		})
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toMedicineEventResponse(m))
	}
}

func getMedicineEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		m, err := svc.Get(r.Context(), claims.UserID, chi.URLParam(r, "medicineEventID"))
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toMedicineEventResponse(m))
	}
}

func updateMedicineEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req updateMedicineEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := UpdateInput{
			DogID:      req.DogID,
			MedicineID: req.MedicineID,
			TimeOfDay:  req.TimeOfDay,
			Dosage:     req.Dosage,
			Notes:      req.Notes,
		}
		if req.Date != nil {
			date, err := events.ParseDateTime(*req.Date)
			if err != nil {
				httpjson.WriteErr(w, apperr.InvalidInputf("Invalid date format"))
				return
			}
			in.Date = &date
		}

		m, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "medicineEventID"), in)
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toMedicineEventResponse(m))
	}
}

func deleteMedicineEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "medicineEventID")); err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toMedicineEventResponse(m MedicineEvent) medicineEventResponse {
	return medicineEventResponse{
		ID:         m.ID,
		DogID:      m.DogID,
		MedicineID: m.MedicineID,
		Date:       m.Date,
		TimeOfDay:  m.TimeOfDay,
		Dosage:     m.Dosage,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
