package postgres

import (
	"context"
	"database/sql"
	"errors"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/medicineevents"
)

type MedicineEventsRepo struct {
	s *Store
}

func (s *Store) MedicineEvents() *MedicineEventsRepo {
	return &MedicineEventsRepo{s: s}
}

func (r *MedicineEventsRepo) Create(ctx context.Context, m medicineevents.MedicineEvent) error {
	_, err := r.s.q(ctx).ExecContext(ctx, `
		INSERT INTO medicine_events (id, dog_id, medicine_id, date, time_of_day, dosage, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		m.ID,
		m.DogID,
		m.MedicineID,
		m.Date,
		m.TimeOfDay,
		m.Dosage,
		m.Notes,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *MedicineEventsRepo) GetByID(ctx context.Context, id string) (medicineevents.MedicineEvent, error) {
	row := r.s.q(ctx).QueryRowContext(ctx, `
		SELECT id, dog_id, medicine_id, date, time_of_day, dosage, notes, created_at, updated_at
		FROM medicine_events
		WHERE id = $1
	`, id)

	var m medicineevents.MedicineEvent
	if err := row.Scan(&m.ID, &m.DogID, &m.MedicineID, &m.Date, &m.TimeOfDay, &m.Dosage, &m.Notes, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medicineevents.MedicineEvent{}, apperr.ErrNotFound
		}
		return medicineevents.MedicineEvent{}, err
	}
	return m, nil
}

func (r *MedicineEventsRepo) ListForUser(ctx context.Context, userID, dogID string) ([]medicineevents.MedicineEvent, error) {
	query := `
		SELECT m.id, m.dog_id, m.medicine_id, m.date, m.time_of_day, m.dosage, m.notes, m.created_at, m.updated_at
		FROM medicine_events m
		JOIN dogs d ON d.id = m.dog_id
		WHERE d.user_id = $1
	`
	args := []any{userID}
	if dogID != "" {
		query += ` AND m.dog_id = $2`
		args = append(args, dogID)
	}
	query += ` ORDER BY m.date DESC, m.created_at ASC`

	rows, err := r.s.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medicineevents.MedicineEvent, 0)
	for rows.Next() {
		var m medicineevents.MedicineEvent
		if err := rows.Scan(&m.ID, &m.DogID, &m.MedicineID, &m.Date, &m.TimeOfDay, &m.Dosage, &m.Notes, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MedicineEventsRepo) Update(ctx context.Context, m medicineevents.MedicineEvent) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `
		UPDATE medicine_events
		SET dog_id = $2, medicine_id = $3, date = $4, time_of_day = $5, dosage = $6, notes = $7, updated_at = $8
		WHERE id = $1
	`,
		m.ID,
		m.DogID,
		m.MedicineID,
		m.Date,
		m.TimeOfDay,
		m.Dosage,
		m.Notes,
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

func (r *MedicineEventsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `DELETE FROM medicine_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
