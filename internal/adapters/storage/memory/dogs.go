package memory

import (
	"context"
	"sort"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/dogs"
)

type DogRepo struct {
	s *Store
}

func (s *Store) Dogs() *DogRepo {
	return &DogRepo{s: s}
}

func (r *DogRepo) Create(ctx context.Context, d dogs.Dog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.dogs[d.ID] = d
	r.s.mark(d.ID)
	return nil
}

func (r *DogRepo) GetForUser(ctx context.Context, id, userID string) (dogs.Dog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.dogs[id]
	if !ok || d.UserID != userID {
		return dogs.Dog{}, apperr.ErrNotFound
	}
	return d, nil
}

func (r *DogRepo) ListByUser(ctx context.Context, userID string) ([]dogs.Dog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]dogs.Dog, 0)
	for _, d := range r.s.dogs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return r.s.seq[out[i].ID] < r.s.seq[out[j].ID]
	})
	return out, nil
}

func (r *DogRepo) Update(ctx context.Context, d dogs.Dog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.dogs[d.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.s.dogs[d.ID] = d
	return nil
}

func (r *DogRepo) DeleteForUser(ctx context.Context, id, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.dogs[id]
	if !ok || d.UserID != userID {
		return apperr.ErrNotFound
	}
	r.s.cascadeDog(id)
	delete(r.s.dogs, id)
	delete(r.s.seq, id)
	return nil
}
