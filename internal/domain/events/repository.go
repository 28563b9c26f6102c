package events

import "context"

type Repository interface {
	Create(ctx context.Context, e Event) error
	// GetByID busca por id solo; el chequeo de ownership del perro
	// queda en el service.
	GetByID(ctx context.Context, id string) (Event, error)
	// ListForUser devuelve los eventos de los perros del usuario,
	// opcionalmente filtrados por perro, ordenados por fecha desc.
	ListForUser(ctx context.Context, userID, dogID string) ([]Event, error)
	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, id string) error
}
