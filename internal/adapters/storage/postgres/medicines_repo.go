package postgres

import (
	"context"
	"database/sql"
	"errors"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/medicines"
)

type MedicinesRepo struct {
	s *Store
}

func (s *Store) Medicines() *MedicinesRepo {
	return &MedicinesRepo{s: s}
}

func (r *MedicinesRepo) Create(ctx context.Context, m medicines.Medicine) error {
	_, err := r.s.q(ctx).ExecContext(ctx, `
		INSERT INTO medicines (id, user_id, name, type, description, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		m.ID,
		m.UserID,
		m.Name,
		m.Type,
		m.Description,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *MedicinesRepo) GetForUser(ctx context.Context, id, userID string) (medicines.Medicine, error) {
	row := r.s.q(ctx).QueryRowContext(ctx, `
		SELECT id, user_id, name, type, description, created_at, updated_at
		FROM medicines
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	var m medicines.Medicine
	if err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Type, &m.Description, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medicines.Medicine{}, apperr.ErrNotFound
		}
		return medicines.Medicine{}, err
	}
	return m, nil
}

func (r *MedicinesRepo) ListByUser(ctx context.Context, userID string) ([]medicines.Medicine, error) {
	rows, err := r.s.q(ctx).QueryContext(ctx, `
		SELECT id, user_id, name, type, description, created_at, updated_at
		FROM medicines
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medicines.Medicine, 0)
	for rows.Next() {
		var m medicines.Medicine
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Type, &m.Description, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MedicinesRepo) Update(ctx context.Context, m medicines.Medicine) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `
		UPDATE medicines
		SET name = $2, type = $3, description = $4, updated_at = $5
		WHERE id = $1
	`,
		m.ID,
		m.Name,
		m.Type,
		m.Description,
		m.UpdatedAt,
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

func (r *MedicinesRepo) DeleteForUser(ctx context.Context, id, userID string) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `
		DELETE FROM medicines WHERE id = $1 AND user_id = $2
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
