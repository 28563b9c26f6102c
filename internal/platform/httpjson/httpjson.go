// Package httpjson concentra la escritura JSON de los handlers.
// El body de error es {"detail": ...}, el formato que esperan los clientes.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"barkly-backend/internal/apperr"
)

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, detail string) {
	Write(w, status, map[string]string{"detail": detail})
}

// WriteErr mapea los sentinelas de apperr a status; cualquier otro error
// sale como 500 genérico sin filtrar detalles internos.
func WriteErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrUnauthenticated):
		Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	default:
		Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
