package customevents

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/ports/storage"
)

type Service struct {
	repo Repository
	tx   storage.TxManager
	now  func() time.Time
}

func NewService(repo Repository, tx storage.TxManager) *Service {
	return &Service{
		repo: repo,
		tx:   tx,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name string
}

type UpdateInput struct {
	Name *string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (CustomEvent, error) {
	if strings.TrimSpace(in.Name) == "" {
		return CustomEvent{}, apperr.InvalidInputf("name is required")
	}

	now := s.now()
	ce := CustomEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      strings.TrimSpace(in.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, ce)
	})
	if err != nil {
		return CustomEvent{}, err
	}
	return ce, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]CustomEvent, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (CustomEvent, error) {
	ce, err := s.repo.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return CustomEvent{}, apperr.NotFoundf("Custom event not found")
		}
		return CustomEvent{}, err
	}
	return ce, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (CustomEvent, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return CustomEvent{}, apperr.InvalidInputf("name cannot be empty")
	}

	var out CustomEvent
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ce, err := s.repo.GetForUser(ctx, id, userID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFoundf("Custom event not found")
			}
			return err
		}

		if in.Name != nil {
			ce.Name = strings.TrimSpace(*in.Name)
		}
		ce.UpdatedAt = s.now()

		if err := s.repo.Update(ctx, ce); err != nil {
			return err
		}
		out = ce
		return nil
	})
	if err != nil {
		return CustomEvent{}, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteForUser(ctx, id, userID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFoundf("Custom event not found")
			}
			return err
		}
		return nil
	})
}

// Owned verifica que el custom event exista y pertenezca al usuario.
func (s *Service) Owned(ctx context.Context, userID, customEventID string) error {
	_, err := s.repo.GetForUser(ctx, customEventID, userID)
	return err
}
