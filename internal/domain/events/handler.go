package events

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/middleware"
	"barkly-backend/internal/platform/httpjson"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/events", func(er chi.Router) {
		er.Get("/", listEventsHandler(svc))
		er.Post("/", createEventHandler(svc))
		er.Get("/{eventID}", getEventHandler(svc))
		er.Put("/{eventID}", updateEventHandler(svc))
		er.Delete("/{eventID}", deleteEventHandler(svc))
	})
}

type createEventRequest struct {
	DogID         string        `json:"dog_id"`
	EventType     EventType     `json:"event_type"`
	CustomEventID string        `json:"custom_event_id"`
	Date          string        `json:"date"`
	TimeOfDay     TimeOfDay     `json:"time_of_day"`
	PooQuality    *int          `json:"poo_quality"`
	VomitQuality  *VomitQuality `json:"vomit_quality"`
	Notes         string        `json:"notes"`
}

type updateEventRequest struct {
	DogID         *string       `json:"dog_id"`
	EventType     *EventType    `json:"event_type"`
	CustomEventID *string       `json:"custom_event_id"`
	Date          *string       `json:"date"`
	TimeOfDay     *TimeOfDay    `json:"time_of_day"`
	PooQuality    *int          `json:"poo_quality"`
	VomitQuality  *VomitQuality `json:"vomit_quality"`
	Notes         *string       `json:"notes"`
}

type eventResponse struct {
	ID            string        `json:"id"`
	DogID         string        `json:"dog_id"`
	EventType     EventType     `json:"event_type,omitempty"`
	CustomEventID string        `json:"custom_event_id,omitempty"`
	Date          time.Time     `json:"date"`
	TimeOfDay     TimeOfDay     `json:"time_of_day"`
	PooQuality    *int          `json:"poo_quality,omitempty"`
	VomitQuality  *VomitQuality `json:"vomit_quality,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// listEventsHandler godoc
// @Summary Listar eventos de los perros del usuario
// @Tags events
// @Produce json
// @Param dog_id query string false "Filtrar por perro"
// @Success 200 {array} eventResponse
// @Failure 403 {string} string "Access denied to this dog"
// @Router /events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}

		httpjson.Write(w, http.StatusOK, out)
	}
}

// createEventHandler godoc
// @Summary Registrar evento
// @Description Lleva exactamente uno de event_type o custom_event_id.
// @Tags events
// @Accept json
// @Produce json
// @Param payload body createEventRequest true "Datos del evento"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "Either event_type or custom_event_id must be provided"
// @Failure 404 {string} string "Dog not found or access denied"
// @Router /events [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		date, err := ParseDateTime(req.Date)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid date format")
			return
		}

		e, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			DogID:         req.DogID,
			EventType:     req.EventType,
			CustomEventID: req.CustomEventID,
			Date:          date,
			TimeOfDay:     req.TimeOfDay,
			PooQuality:    req.PooQuality,
			VomitQuality:  req.VomitQuality,
			Notes:         req.Notes,
		})
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toEventResponse(e))
	}
}

// getEventHandler godoc
// @Summary Traer un evento
// @Tags events
// @Produce json
// @Param eventID path string true "ID del evento"
// @Success 200 {object} eventResponse
// @Failure 403 {string} string "Access denied"
// @Failure 404 {string} string "Event not found"
// @Router /events/{eventID} [get]
func getEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		e, err := svc.Get(r.Context(), claims.UserID, chi.URLParam(r, "eventID"))
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toEventResponse(e))
	}
}

// updateEventHandler godoc
// @Summary Actualizar evento
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "ID del evento"
// @Param payload body updateEventRequest true "Campos a cambiar"
// @Success 200 {object} eventResponse
// @Failure 403 {string} string "Access denied"
// @Failure 404 {string} string "Event not found"
// @Router /events/{eventID} [put]
func updateEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req updateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		in := UpdateInput{
			DogID:         req.DogID,
			EventType:     req.EventType,
			CustomEventID: req.CustomEventID,
			TimeOfDay:     req.TimeOfDay,
			PooQuality:    req.PooQuality,
			VomitQuality:  req.VomitQuality,
			Notes:         req.Notes,
		}
		if req.Date != nil {
			date, err := ParseDateTime(*req.Date)
			if err != nil {
				httpjson.WriteErr(w, apperr.InvalidInputf("Invalid date format"))
				return
			}
			in.Date = &date
		}

		e, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "eventID"), in)
		if err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, toEventResponse(e))
	}
}

// deleteEventHandler godoc
// @Summary Borrar evento
// @Tags events
// @Param eventID path string true "ID del evento"
// @Success 204
// @Failure 403 {string} string "Access denied"
// @Failure 404 {string} string "Event not found"
// @Router /events/{eventID} [delete]
func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "eventID")); err != nil {
			httpjson.WriteErr(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:            e.ID,
		DogID:         e.DogID,
		EventType:     e.EventType,
		CustomEventID: e.CustomEventID,
		Date:          e.Date,
		TimeOfDay:     e.TimeOfDay,
		PooQuality:    e.PooQuality,
		VomitQuality:  e.VomitQuality,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
