package medicines

import "context"

type Repository interface {
	Create(ctx context.Context, m Medicine) error
	GetForUser(ctx context.Context, id, userID string) (Medicine, error)
	ListByUser(ctx context.Context, userID string) ([]Medicine, error)
	Update(ctx context.Context, m Medicine) error
	// DeleteForUser borra la medicina; el storage cascadea sus medicine_events.
	DeleteForUser(ctx context.Context, id, userID string) error
}
