package memory

import (
	"context"
	"sort"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/vetvisits"
)

type VetVisitRepo struct {
	s *Store
}

func (s *Store) VetVisits() *VetVisitRepo {
	return &VetVisitRepo{s: s}
}

func (r *VetVisitRepo) Create(ctx context.Context, v vetvisits.VetVisit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.vetVisits[v.ID] = v
	r.s.mark(v.ID)
	return nil
}

func (r *VetVisitRepo) GetByID(ctx context.Context, id string) (vetvisits.VetVisit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.vetVisits[id]
	if !ok {
		return vetvisits.VetVisit{}, apperr.ErrNotFound
	}
	return v, nil
}

func (r *VetVisitRepo) ListForUser(ctx context.Context, userID, dogID string) ([]vetvisits.VetVisit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]vetvisits.VetVisit, 0)
	for _, v := range r.s.vetVisits {
		d, ok := r.s.dogs[v.DogID]
		if !ok || d.UserID != userID {
			continue
		}
		if dogID != "" && v.DogID != dogID {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return r.s.seq[out[i].ID] < r.s.seq[out[j].ID]
	})
	return out, nil
}

func (r *VetVisitRepo) Update(ctx context.Context, v vetvisits.VetVisit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vetVisits[v.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.s.vetVisits[v.ID] = v
	return nil
}

func (r *VetVisitRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vetVisits[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.s.vetVisits, id)
	delete(r.s.seq, id)
	return nil
}
