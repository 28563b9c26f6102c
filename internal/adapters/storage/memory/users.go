package memory

import (
	"context"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/users"
)

type UserRepo struct {
	s *Store
}

func (s *Store) Users() *UserRepo {
	return &UserRepo{s: s}
}

func (r *UserRepo) Upsert(ctx context.Context, u users.User) (users.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if prev, ok := r.s.users[u.ID]; ok {
		u.CreatedAt = prev.CreatedAt
	} else {
		r.s.mark(u.ID)
	}
	r.s.users[u.ID] = u
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return users.User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return apperr.ErrNotFound
	}
	r.s.cascadeUser(id)
	delete(r.s.users, id)
	delete(r.s.seq, id)
	return nil
}
