package memory

import (
	"context"
	"sort"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/customevents"
)

type CustomEventRepo struct {
	s *Store
}

func (s *Store) CustomEvents() *CustomEventRepo {
	return &CustomEventRepo{s: s}
}

func (r *CustomEventRepo) Create(ctx context.Context, ce customevents.CustomEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.customEvents[ce.ID] = ce
	r.s.mark(ce.ID)
	return nil
}

func (r *CustomEventRepo) GetForUser(ctx context.Context, id, userID string) (customevents.CustomEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ce, ok := r.s.customEvents[id]
	if !ok || ce.UserID != userID {
		return customevents.CustomEvent{}, apperr.ErrNotFound
	}
	return ce, nil
}

func (r *CustomEventRepo) ListByUser(ctx context.Context, userID string) ([]customevents.CustomEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]customevents.CustomEvent, 0)
	for _, ce := range r.s.customEvents {
		if ce.UserID == userID {
			out = append(out, ce)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return r.s.seq[out[i].ID] < r.s.seq[out[j].ID]
	})
	return out, nil
}

func (r *CustomEventRepo) Update(ctx context.Context, ce customevents.CustomEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.customEvents[ce.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.s.customEvents[ce.ID] = ce
	return nil
}

func (r *CustomEventRepo) DeleteForUser(ctx context.Context, id, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ce, ok := r.s.customEvents[id]
	if !ok || ce.UserID != userID {
		return apperr.ErrNotFound
	}
	r.s.cascadeCustomEvent(id)
	delete(r.s.customEvents, id)
	delete(r.s.seq, id)
	return nil
}
