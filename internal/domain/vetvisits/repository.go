package vetvisits

import "context"

type Repository interface {
	Create(ctx context.Context, v VetVisit) error
	GetByID(ctx context.Context, id string) (VetVisit, error)
	ListForUser(ctx context.Context, userID, dogID string) ([]VetVisit, error)
	Update(ctx context.Context, v VetVisit) error
	Delete(ctx context.Context, id string) error
}
