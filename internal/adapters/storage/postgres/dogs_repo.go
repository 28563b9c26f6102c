package postgres

import (
	"context"
	"database/sql"
	"errors"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/dogs"
)

type DogsRepo struct {
	s *Store
}

func (s *Store) Dogs() *DogsRepo {
	return &DogsRepo{s: s}
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	_, err := r.s.q(ctx).ExecContext(ctx, `
		INSERT INTO dogs (id, user_id, name, profile_picture, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		d.ID,
		d.UserID,
		d.Name,
		d.ProfilePicture,
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

func (r *DogsRepo) GetForUser(ctx context.Context, id, userID string) (dogs.Dog, error) {
	row := r.s.q(ctx).QueryRowContext(ctx, `
		SELECT id, user_id, name, profile_picture, created_at, updated_at
		FROM dogs
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	var d dogs.Dog
	if err := row.Scan(&d.ID, &d.UserID, &d.Name, &d.ProfilePicture, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dogs.Dog{}, apperr.ErrNotFound
		}
		return dogs.Dog{}, err
	}
	return d, nil
}

func (r *DogsRepo) ListByUser(ctx context.Context, userID string) ([]dogs.Dog, error) {
	rows, err := r.s.q(ctx).QueryContext(ctx, `
		SELECT id, user_id, name, profile_picture, created_at, updated_at
		FROM dogs
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		var d dogs.Dog
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.ProfilePicture, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `
		UPDATE dogs
		SET name = $2, profile_picture = $3, updated_at = $4
		WHERE id = $1
	`,
		d.ID,
		d.Name,
		d.ProfilePicture,
		d.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) DeleteForUser(ctx context.Context, id, userID string) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `
		DELETE FROM dogs WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
