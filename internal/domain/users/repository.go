package users

import "context"

type Repository interface {
	// Upsert inserta o actualiza por ID, preservando CreatedAt del registro
	// existente. Devuelve el registro final.
	Upsert(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	// Delete borra el usuario; el storage cascadea todo lo que posee.
	Delete(ctx context.Context, id string) error
}
