package postgres

import (
	"context"
	"database/sql"
	"errors"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/users"
)

type UsersRepo struct {
	s *Store
}

func (s *Store) Users() *UsersRepo {
	return &UsersRepo{s: s}
}

func (r *UsersRepo) Upsert(ctx context.Context, u users.User) (users.User, error) {
	row := r.s.q(ctx).QueryRowContext(ctx, `
		INSERT INTO users (id, email, name, picture, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			picture = EXCLUDED.picture,
			updated_at = EXCLUDED.updated_at
		RETURNING id, email, name, picture, created_at, updated_at
	`,
		u.ID,
		u.Email,
		u.Name,
		u.Picture,
		u.CreatedAt,
		u.UpdatedAt,
	)

	var out users.User
	if err := row.Scan(&out.ID, &out.Email, &out.Name, &out.Picture, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return users.User{}, err
	}
	return out, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	row := r.s.q(ctx).QueryRowContext(ctx, `
		SELECT id, email, name, picture, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	var u users.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Picture, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, apperr.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	// los FKs con ON DELETE CASCADE arrastran perros, vets, medicinas,
	// custom events y todo lo que cuelga de ellos.
	res, err := r.s.q(ctx).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
