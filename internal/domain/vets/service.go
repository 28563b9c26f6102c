package vets

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
	Name        string
	ContactInfo string
	Notes       string
}

type UpdateInput struct {
	Name        *string
	ContactInfo *string
	Notes       *string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Vet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Vet{}, apperr.InvalidInputf("name is required")
	}

	now := s.now()
	v := Vet{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		ContactInfo: strings.TrimSpace(in.ContactInfo),
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, v)
	})
	if err != nil {
		return Vet{}, err
	}
	return v, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Vet, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (Vet, error) {
	v, err := s.repo.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Vet{}, apperr.NotFoundf("Vet not found")
		}
		return Vet{}, err
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (Vet, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return Vet{}, apperr.InvalidInputf("name cannot be empty")
	}

	var out Vet
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, err := s.repo.GetForUser(ctx, id, userID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFoundf("Vet not found")
			}
			return err
		}

		if in.Name != nil {
			v.Name = strings.TrimSpace(*in.Name)
		}
		if in.ContactInfo != nil {
			v.ContactInfo = *in.ContactInfo
		}
		if in.Notes != nil {
			v.Notes = *in.Notes
		}
		v.UpdatedAt = s.now()

		if err := s.repo.Update(ctx, v); err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return Vet{}, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteForUser(ctx, id, userID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFoundf("Vet not found")
			}
			return err
		}
		return nil
	})
}

// Owned verifica que el vet exista y pertenezca al usuario (FK de vet visits).
func (s *Service) Owned(ctx context.Context, userID, vetID string) error {
	_, err := s.repo.GetForUser(ctx, vetID, userID)
	return err
}
