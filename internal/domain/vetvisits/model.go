package vetvisits

import (
	"time"

	"barkly-backend/internal/domain/events"
)

// VetVisit registra una consulta veterinaria de un perro.
type VetVisit struct {
	ID    string
	DogID string
	VetID string

	Date      time.Time
	TimeOfDay events.TimeOfDay
	Notes     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
