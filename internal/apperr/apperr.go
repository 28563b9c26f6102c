package apperr

import (
	"errors"
	"fmt"
)

// Sentinelas de error a nivel request. Cada uno mapea 1:1 a un status HTTP
// en platform/httpjson. Lo que no matchee ninguno sale como internal error.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
)

// Error lleva el kind (uno de los sentinelas) y la razón legible que se
// devuelve al cliente tal cual en el body {"detail": ...}.
type Error struct {
	kind   error
	detail string
}

func (e *Error) Error() string { return e.detail }
func (e *Error) Unwrap() error { return e.kind }

func Unauthenticatedf(format string, args ...any) error {
	return &Error{kind: ErrUnauthenticated, detail: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...any) error {
	return &Error{kind: ErrForbidden, detail: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) error {
	return &Error{kind: ErrNotFound, detail: fmt.Sprintf(format, args...)}
}

func InvalidInputf(format string, args ...any) error {
	return &Error{kind: ErrInvalidInput, detail: fmt.Sprintf(format, args...)}
}
