// Package memory implementa el storage completo en mapas, para correr
// sin Postgres (dev y tests). Misma semántica de cascadas que el
// esquema relacional.
package memory

import (
	"context"
	"sync"

	"barkly-backend/internal/domain/customevents"
	"barkly-backend/internal/domain/dogs"
	"barkly-backend/internal/domain/events"
	"barkly-backend/internal/domain/medicineevents"
	"barkly-backend/internal/domain/medicines"
	"barkly-backend/internal/domain/users"
	"barkly-backend/internal/domain/vets"
	"barkly-backend/internal/domain/vetvisits"
)

type Store struct {
	mu sync.RWMutex

	users          map[string]users.User
	dogs           map[string]dogs.Dog
	vets           map[string]vets.Vet
	medicines      map[string]medicines.Medicine
	customEvents   map[string]customevents.CustomEvent
	events         map[string]events.Event
	vetVisits      map[string]vetvisits.VetVisit
	medicineEvents map[string]medicineevents.MedicineEvent

	// seq preserva orden de inserción para desempatar listados.
	seq     map[string]uint64
	nextSeq uint64
}

func NewStore() *Store {
	return &Store{
		users:          make(map[string]users.User),
		dogs:           make(map[string]dogs.Dog),
		vets:           make(map[string]vets.Vet),
		medicines:      make(map[string]medicines.Medicine),
		customEvents:   make(map[string]customevents.CustomEvent),
		events:         make(map[string]events.Event),
		vetVisits:      make(map[string]vetvisits.VetVisit),
		medicineEvents: make(map[string]medicineevents.MedicineEvent),
		seq:            make(map[string]uint64),
	}
}

// RunInTx ejecuta fn directo: el store en memoria no tiene transacciones
// reales, cada operación ya es atómica bajo el mutex.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Store) mark(id string) {
	s.nextSeq++
	s.seq[id] = s.nextSeq
}

// --- cascadas; llamar con el lock de escritura tomado ---

func (s *Store) cascadeDog(dogID string) {
	for id, e := range s.events {
		if e.DogID == dogID {
			delete(s.events, id)
			delete(s.seq, id)
		}
	}
	for id, v := range s.vetVisits {
		if v.DogID == dogID {
			delete(s.vetVisits, id)
			delete(s.seq, id)
		}
	}
	for id, m := range s.medicineEvents {
		if m.DogID == dogID {
			delete(s.medicineEvents, id)
			delete(s.seq, id)
		}
	}
}

func (s *Store) cascadeVet(vetID string) {
	for id, v := range s.vetVisits {
		if v.VetID == vetID {
			delete(s.vetVisits, id)
			delete(s.seq, id)
		}
	}
}

func (s *Store) cascadeMedicine(medicineID string) {
	for id, m := range s.medicineEvents {
		if m.MedicineID == medicineID {
			delete(s.medicineEvents, id)
			delete(s.seq, id)
		}
	}
}

func (s *Store) cascadeCustomEvent(customEventID string) {
	for id, e := range s.events {
		if e.CustomEventID == customEventID {
			delete(s.events, id)
			delete(s.seq, id)
		}
	}
}

func (s *Store) cascadeUser(userID string) {
	for id, d := range s.dogs {
		if d.UserID == userID {
			s.cascadeDog(id)
			delete(s.dogs, id)
			delete(s.seq, id)
		}
	}
	for id, v := range s.vets {
		if v.UserID == userID {
			s.cascadeVet(id)
			delete(s.vets, id)
			delete(s.seq, id)
		}
	}
	for id, m := range s.medicines {
		if m.UserID == userID {
			s.cascadeMedicine(id)
			delete(s.medicines, id)
			delete(s.seq, id)
		}
	}
	for id, ce := range s.customEvents {
		if ce.UserID == userID {
			s.cascadeCustomEvent(id)
			delete(s.customEvents, id)
			delete(s.seq, id)
		}
	}
}
