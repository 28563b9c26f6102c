package memory

import (
	"context"
	"sort"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/medicines"
)

type MedicineRepo struct {
	s *Store
}

func (s *Store) Medicines() *MedicineRepo {
	return &MedicineRepo{s: s}
}

func (r *MedicineRepo) Create(ctx context.Context, m medicines.Medicine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.medicines[m.ID] = m
	r.s.mark(m.ID)
	return nil
}

func (r *MedicineRepo) GetForUser(ctx context.Context, id, userID string) (medicines.Medicine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.medicines[id]
	if !ok || m.UserID != userID {
		return medicines.Medicine{}, apperr.ErrNotFound
	}
	return m, nil
}

func (r *MedicineRepo) ListByUser(ctx context.Context, userID string) ([]medicines.Medicine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]medicines.Medicine, 0)
	for _, m := range r.s.medicines {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return r.s.seq[out[i].ID] < r.s.seq[out[j].ID]
	})
	return out, nil
}

func (r *MedicineRepo) Update(ctx context.Context, m medicines.Medicine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.medicines[m.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.s.medicines[m.ID] = m
	return nil
}

func (r *MedicineRepo) DeleteForUser(ctx context.Context, id, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.medicines[id]
	if !ok || m.UserID != userID {
		return apperr.ErrNotFound
	}
	r.s.cascadeMedicine(id)
	delete(r.s.medicines, id)
	delete(r.s.seq, id)
	return nil
}
