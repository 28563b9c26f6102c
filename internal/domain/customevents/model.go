package customevents

import "time"

// CustomEvent es un tipo de evento definido por el usuario, para
// registrar lo que no cubre el set cerrado de event types.
type CustomEvent struct {
	ID     string
	UserID string

	Name string

	CreatedAt time.Time
	UpdatedAt time.Time
}
