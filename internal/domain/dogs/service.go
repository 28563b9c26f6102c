package dogs

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
	Name           string
	ProfilePicture string
}

type UpdateInput struct {
	// Punteros para update parcial: nil = no tocar.
	Name           *string
	ProfilePicture *string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Dog, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Dog{}, apperr.InvalidInputf("name is required")
	}

	now := s.now()
	d := Dog{
		ID:             uuid.NewString(),
		UserID:         userID,
		Name:           strings.TrimSpace(in.Name),
		ProfilePicture: in.ProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, d)
	})
	if err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Dog, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (Dog, error) {
	d, err := s.repo.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Dog{}, apperr.NotFoundf("Dog not found")
		}
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (Dog, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return Dog{}, apperr.InvalidInputf("name cannot be empty")
	}

	var out Dog
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		d, err := s.repo.GetForUser(ctx, id, userID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFoundf("Dog not found")
			}
			return err
		}

		if in.Name != nil {
			d.Name = strings.TrimSpace(*in.Name)
		}
		if in.ProfilePicture != nil {
			d.ProfilePicture = *in.ProfilePicture
		}
		d.UpdatedAt = s.now()

		if err := s.repo.Update(ctx, d); err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return Dog{}, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteForUser(ctx, id, userID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFoundf("Dog not found")
			}
			return err
		}
		return nil
	})
}
