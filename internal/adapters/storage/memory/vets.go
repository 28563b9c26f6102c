package memory

import (
	"context"
	"sort"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/vets"
)

type VetRepo struct {
	s *Store
}

func (s *Store) Vets() *VetRepo {
	return &VetRepo{s: s}
}

func (r *VetRepo) Create(ctx context.Context, v vets.Vet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.vets[v.ID] = v
	r.s.mark(v.ID)
	return nil
}

func (r *VetRepo) GetForUser(ctx context.Context, id, userID string) (vets.Vet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.vets[id]
	if !ok || v.UserID != userID {
		return vets.Vet{}, apperr.ErrNotFound
	}
	return v, nil
}

func (r *VetRepo) ListByUser(ctx context.Context, userID string) ([]vets.Vet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]vets.Vet, 0)
	for _, v := range r.s.vets {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return r.s.seq[out[i].ID] < r.s.seq[out[j].ID]
	})
	return out, nil
}

func (r *VetRepo) Update(ctx context.Context, v vets.Vet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vets[v.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.s.vets[v.ID] = v
	return nil
}

func (r *VetRepo) DeleteForUser(ctx context.Context, id, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.vets[id]
	if !ok || v.UserID != userID {
		return apperr.ErrNotFound
	}
	r.s.cascadeVet(id)
	delete(r.s.vets, id)
	delete(r.s.seq, id)
	return nil
}
