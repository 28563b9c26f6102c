package memory

import (
	"context"
	"sort"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/events"
)

type EventRepo struct {
	s *Store
}

func (s *Store) Events() *EventRepo {
	return &EventRepo{s: s}
}

func (r *EventRepo) Create(ctx context.Context, e events.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.events[e.ID] = e
	r.s.mark(e.ID)
	return nil
}

func (r *EventRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.events[id]
	if !ok {
		return events.Event{}, apperr.ErrNotFound
	}
	return e, nil
}

func (r *EventRepo) ListForUser(ctx context.Context, userID, dogID string) ([]events.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]events.Event, 0)
	for _, e := range r.s.events {
		d, ok := r.s.dogs[e.DogID]
		if !ok || d.UserID != userID {
			continue
		}
		if dogID != "" && e.DogID != dogID {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return r.s.seq[out[i].ID] < r.s.seq[out[j].ID]
	})
	return out, nil
}

func (r *EventRepo) Update(ctx context.Context, e events.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[e.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.s.events[e.ID] = e
	return nil
}

func (r *EventRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.s.events, id)
	delete(r.s.seq, id)
	return nil
}
