package events

import "time"

// Event es un registro de salud de un perro. Lleva exactamente uno de
// EventType o CustomEventID.
type Event struct {
	ID    string
	DogID string

	EventType     EventType
	CustomEventID string

	Date      time.Time
	TimeOfDay TimeOfDay

	// Solo para Poo: escala Bristol 1..7.
	PooQuality *int
	// Solo para Vomit.
	VomitQuality *VomitQuality

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
