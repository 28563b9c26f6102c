package memory

import (
	"context"
	"sort"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/medicineevents"
)

type MedicineEventRepo struct {
	s *Store
}

func (s *Store) MedicineEvents() *MedicineEventRepo {
	return &MedicineEventRepo{s: s}
}

func (r *MedicineEventRepo) Create(ctx context.Context, m medicineevents.MedicineEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.medicineEvents[m.ID] = m
	r.s.mark(m.ID)
	return nil
}

func (r *MedicineEventRepo) GetByID(ctx context.Context, id string) (medicineevents.MedicineEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.medicineEvents[id]
	if !ok {
		return medicineevents.MedicineEvent{}, apperr.ErrNotFound
	}
	return m, nil
}

func (r *MedicineEventRepo) ListForUser(ctx context.Context, userID, dogID string) ([]medicineevents.MedicineEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]medicineevents.MedicineEvent, 0)
	for _, m := range r.s.medicineEvents {
		d, ok := r.s.dogs[m.DogID]
		if !ok || d.UserID != userID {
			continue
		}
		if dogID != "" && m.DogID != dogID {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return r.s.seq[out[i].ID] < r.s.seq[out[j].ID]
	})
	return out, nil
}

func (r *MedicineEventRepo) Update(ctx context.Context, m medicineevents.MedicineEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.medicineEvents[m.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.s.medicineEvents[m.ID] = m
	return nil
}

func (r *MedicineEventRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.medicineEvents[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.s.medicineEvents, id)
	delete(r.s.seq, id)
	return nil
}
