package postgres

import (
	"context"
	"database/sql"
	"errors"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/vets"
)

type VetsRepo struct {
	s *Store
}

func (s *Store) Vets() *VetsRepo {
	return &VetsRepo{s: s}
}

func (r *VetsRepo) Create(ctx context.Context, v vets.Vet) error {
	_, err := r.s.q(ctx).ExecContext(ctx, `
		INSERT INTO vets (id, user_id, name, contact_info, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		v.ID,
		v.UserID,
		v.Name,
		v.ContactInfo,
		v.Notes,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *VetsRepo) GetForUser(ctx context.Context, id, userID string) (vets.Vet, error) {
	row := r.s.q(ctx).QueryRowContext(ctx, `
		SELECT id, user_id, name, contact_info, notes, created_at, updated_at
		FROM vets
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	var v vets.Vet
	if err := row.Scan(&v.ID, &v.UserID, &v.Name, &v.ContactInfo, &v.Notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vets.Vet{}, apperr.ErrNotFound
		}
		return vets.Vet{}, err
	}
	return v, nil
}

func (r *VetsRepo) ListByUser(ctx context.Context, userID string) ([]vets.Vet, error) {
	rows, err := r.s.q(ctx).QueryContext(ctx, `
		SELECT id, user_id, name, contact_info, notes, created_at, updated_at
		FROM vets
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Vet, 0)
	for rows.Next() {
		var v vets.Vet
		if err := rows.Scan(&v.ID, &v.UserID, &v.Name, &v.ContactInfo, &v.Notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VetsRepo) Update(ctx context.Context, v vets.Vet) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `
		UPDATE vets
		SET name = $2, contact_info = $3, notes = $4, updated_at = $5
		WHERE id = $1
	`,
		v.ID,
		v.Name,
		v.ContactInfo,
		v.Notes,
		v.UpdatedAt,
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

func (r *VetsRepo) DeleteForUser(ctx context.Context, id, userID string) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `
		DELETE FROM vets WHERE id = $1 AND user_id = $2
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
