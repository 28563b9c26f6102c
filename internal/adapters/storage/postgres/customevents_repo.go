package postgres

import (
	"context"
	"database/sql"
	"errors"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/customevents"
)

type CustomEventsRepo struct {
	s *Store
}

func (s *Store) CustomEvents() *CustomEventsRepo {
	return &CustomEventsRepo{s: s}
}

func (r *CustomEventsRepo) Create(ctx context.Context, ce customevents.CustomEvent) error {
	_, err := r.s.q(ctx).ExecContext(ctx, `
		INSERT INTO custom_events (id, user_id, name, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		ce.ID,
		ce.UserID,
		ce.Name,
		ce.CreatedAt,
		ce.UpdatedAt,
	)
	return err
}

func (r *CustomEventsRepo) GetForUser(ctx context.Context, id, userID string) (customevents.CustomEvent, error) {
	row := r.s.q(ctx).QueryRowContext(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM custom_events
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	var ce customevents.CustomEvent
	if err := row.Scan(&ce.ID, &ce.UserID, &ce.Name, &ce.CreatedAt, &ce.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return customevents.CustomEvent{}, apperr.ErrNotFound
		}
		return customevents.CustomEvent{}, err
	}
	return ce, nil
}

func (r *CustomEventsRepo) ListByUser(ctx context.Context, userID string) ([]customevents.CustomEvent, error) {
	rows, err := r.s.q(ctx).QueryContext(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM custom_events
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]customevents.CustomEvent, 0)
	for rows.Next() {
		var ce customevents.CustomEvent
		if err := rows.Scan(&ce.ID, &ce.UserID, &ce.Name, &ce.CreatedAt, &ce.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, ce)
	}
	return out, rows.Err()
}

func (r *CustomEventsRepo) Update(ctx context.Context, ce customevents.CustomEvent) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `
		UPDATE custom_events
		SET name = $2, updated_at = $3
		WHERE id = $1
	`,
		ce.ID,
		ce.Name,
		ce.UpdatedAt,
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

func (r *CustomEventsRepo) DeleteForUser(ctx context.Context, id, userID string) error {
	res, err := r.s.q(ctx).ExecContext(ctx, `
		DELETE FROM custom_events WHERE id = $1 AND user_id = $2
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
