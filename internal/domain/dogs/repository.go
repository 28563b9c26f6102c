package dogs

import "context"

// Repository filtra siempre por (id, user_id): un perro de otro usuario es
// indistinguible de uno inexistente.
type Repository interface {
	Create(ctx context.Context, d Dog) error
	GetForUser(ctx context.Context, id, userID string) (Dog, error)
	ListByUser(ctx context.Context, userID string) ([]Dog, error)
	Update(ctx context.Context, d Dog) error
	// DeleteForUser borra el perro; el storage cascadea events, vet_visits
	// y medicine_events.
	DeleteForUser(ctx context.Context, id, userID string) error
}
