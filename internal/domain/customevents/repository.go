package customevents

import "context"

type Repository interface {
	Create(ctx context.Context, ce CustomEvent) error
	GetForUser(ctx context.Context, id, userID string) (CustomEvent, error)
	ListByUser(ctx context.Context, userID string) ([]CustomEvent, error)
	Update(ctx context.Context, ce CustomEvent) error
	// DeleteForUser borra el custom event; el storage cascadea los
	// events que lo referencian.
	DeleteForUser(ctx context.Context, id, userID string) error
}
