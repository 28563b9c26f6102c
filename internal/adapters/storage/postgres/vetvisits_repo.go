package postgres

import (
	"context"
	"database/sql"
	"errors"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/vetvisits"
)

type VetVisitsRepo struct {
	s *Store
}

func (s *Store) VetVisits() *VetVisitsRepo {
	return &VetVisitsRepo{s: s}
}

func (r *VetVisitsRepo) Create(ctx context.Context, v vetvisits.VetVisit) error {
	_, err := r.s.q(ctx).ExecContext(ctx, `
		INSERT INTO vet_visits (id, dog_id, vet_id, date, time_of_day, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		v.ID,
		v.DogID,
		v.VetID,
		v.Date,
		v.TimeOfDay,
		v.Notes,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *VetVisitsRepo) GetByID(ctx context.Context, id string) (vetvisits.VetVisit, error) {
	row := r.s.q(ctx).QueryRowContext(ctx, `
		SELECT id, dog_id, vet_id, date, time_of_day, notes, created_at, updated_at
		FROM vet_visits
		WHERE id = $1
	`, id)

	var v vetvisits.VetVisit
	if err := row.Scan(&v.ID, &v.DogID, &v.VetID, &v.Date, &v.TimeOfDay, &v.Notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vetvisits.VetVisit{}, apperr.ErrNotFound
		}
		return vetvisits.VetVisit{}, err
	}
	return v, nil
}

func (r *VetVisitsRepo) ListForUser(ctx context.Context, userID, dogID string) ([]vetvisits.VetVisit, error) {
	query := `
		SELECT v.id, v.dog_id, v.vet_id, v.date, v.time_of_day, v.notes, v.created_at, v.updated_at
		FROM vet_visits v
		JOIN dogs d ON d.id = v.dog_id
		WHERE d.user_id = $1
	`
	args := []any{userID}
	if dogID != "" {
		query += ` AND v.dog_id = $2`
		args = append(args, dogID)
	}
	query += ` ORDER BY v.date DESC, v.created_at ASC`

	rows, err := r.s.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vetvisits.VetVisit, 0)
	for rows.Next() {
		var v vetvisits.VetVisit
		if err := rows.Scan(&v.ID, &v.DogID, &v.VetID, &v.Date, &v.TimeOfDay, &v.Notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VetVisitsRepo) Update(ctx context.Context, v vetvisits.VetVisit) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `
		UPDATE vet_visits
		SET dog_id = $2, vet_id = $3, date = $4, time_of_day = $5, notes = $6, updated_at = $7
		WHERE id = $1
	`,
		v.ID,
		v.DogID,
		v.VetID,
		v.Date,
		v.TimeOfDay,
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

func (r *VetVisitsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `DELETE FROM vet_visits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
