package events

import (
	"fmt"
	"time"
)

// TimeOfDay es la franja horaria del evento.
type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
	Overnight TimeOfDay = "Overnight"
)

func (t TimeOfDay) Valid() bool {
	switch t {
	case Morning, Afternoon, Evening, Overnight:
		return true
	default:
		return false
	}
}

// EventType es el set cerrado de eventos predefinidos; lo que no
// entra acá se modela con un custom event.
type EventType string

const (
	TypePoo           EventType = "Poo"
	TypeVomit         EventType = "Vomit"
	TypeNausea        EventType = "Nausea"
	TypeItchy         EventType = "Itchy"
	TypeGrassMunching EventType = "Grass Munching"
	TypeInjury        EventType = "Injury"
	TypeOtherEvent    EventType = "Other"
)

func (t EventType) Valid() bool {
	switch t {
	case TypePoo, TypeVomit, TypeNausea, TypeItchy, TypeGrassMunching, TypeInjury, TypeOtherEvent:
		return true
	default:
		return false
	}
}

// VomitQuality describe el contenido del vómito.
type VomitQuality string

const (
	VomitFood     VomitQuality = "Food"
	VomitBile     VomitQuality = "Bile"
	VomitFoodBile VomitQuality = "Food+Bile"
	VomitOther    VomitQuality = "Other"
)

func (q VomitQuality) Valid() bool {
	switch q {
	case VomitFood, VomitBile, VomitFoodBile, VomitOther:
		return true
	default:
		return false
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDateTime acepta RFC3339, fecha-hora sin zona o fecha sola,
// que es lo que mandan los distintos pickers del frontend.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
