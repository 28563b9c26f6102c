package postgres

import (
	"context"
	"database/sql"
	"errors"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/events"
)

type EventsRepo struct {
	s *Store
}

func (s *Store) Events() *EventsRepo {
	return &EventsRepo{s: s}
}

func (r *EventsRepo) Create(ctx context.Context, e events.Event) error {
	_, err := r.s.q(ctx).ExecContext(ctx, `
		INSERT INTO events (
			id, dog_id,
			event_type, custom_event_id,
			date, time_of_day,
			poo_quality, vomit_quality, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		e.ID,
		e.DogID,
		nullString(string(e.EventType)),
		nullString(e.CustomEventID),
		e.Date,
		e.TimeOfDay,
		nullInt(e.PooQuality),
		nullVomit(e.VomitQuality),
		e.Notes,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	row := r.s.q(ctx).QueryRowContext(ctx, `
		SELECT
			id, dog_id,
			event_type, custom_event_id,
			date, time_of_day,
			poo_quality, vomit_quality, notes,
			created_at, updated_at
		FROM events
		WHERE id = $1
	`, id)

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.Event{}, apperr.ErrNotFound
		}
		return events.Event{}, err
	}
	return e, nil
}

func (r *EventsRepo) ListForUser(ctx context.Context, userID, dogID string) ([]events.Event, error) {
	query := `
		SELECT
			e.id, e.dog_id,
			e.event_type, e.custom_event_id,
			e.date, e.time_of_day,
			e.poo_quality, e.vomit_quality, e.notes,
			e.created_at, e.updated_at
		FROM events e
		JOIN dogs d ON d.id = e.dog_id
		WHERE d.user_id = $1
	`
	args := []any{userID}
	if dogID != "" {
		query += ` AND e.dog_id = $2`
		args = append(args, dogID)
	}
	query += ` ORDER BY e.date DESC, e.created_at ASC`

	rows, err := r.s.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EventsRepo) Update(ctx context.Context, e events.Event) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `
		UPDATE events
		SET
			dog_id = $2,
			event_type = $3,
			custom_event_id = $4,
			date = $5,
			time_of_day = $6,
			poo_quality = $7,
			vomit_quality = $8,
			notes = $9,
			updated_at = $10
		WHERE id = $1
	`,
		e.ID,
		e.DogID,
		nullString(string(e.EventType)),
		nullString(e.CustomEventID),
		e.Date,
		e.TimeOfDay,
		nullInt(e.PooQuality),
		nullVomit(e.VomitQuality),
		e.Notes,
		e.UpdatedAt,
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

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func scanEvent(scan func(dest ...any) error) (events.Event, error) {
	var (
		e        events.Event
		evType   sql.NullString
		customID sql.NullString
		poo      sql.NullInt32
		vomit    sql.NullString
	)
	if err := scan(
		&e.ID,
		&e.DogID,
		&evType,
		&customID,
		&e.Date,
		&e.TimeOfDay,
		&poo,
		&vomit,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return events.Event{}, err
	}

	e.EventType = events.EventType(evType.String)
	e.CustomEventID = customID.String
	if poo.Valid {
		v := int(poo.Int32)
		e.PooQuality = &v
	}
	if vomit.Valid {
		q := events.VomitQuality(vomit.String)
		e.VomitQuality = &q
	}
	return e, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func nullVomit(q *events.VomitQuality) sql.NullString {
	if q == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*q), Valid: true}
}
