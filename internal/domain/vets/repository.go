package vets

import "context"

type Repository interface {
	Create(ctx context.Context, v Vet) error
	GetForUser(ctx context.Context, id, userID string) (Vet, error)
	ListByUser(ctx context.Context, userID string) ([]Vet, error)
	Update(ctx context.Context, v Vet) error
	// DeleteForUser borra el vet; el storage cascadea sus vet_visits.
	DeleteForUser(ctx context.Context, id, userID string) error
}
