package medicineevents

import (
	"time"

	"barkly-backend/internal/domain/events"
)

// MedicineEvent registra una toma de medicación de un perro.
type MedicineEvent struct {
	ID         string
	DogID      string
	MedicineID string

	Date      time.Time
	TimeOfDay events.TimeOfDay
	Dosage    float64
	Notes     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
