package medicines

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
	Type        MedicineType
	Description string
}

type UpdateInput struct {
	Name        *string
	Type        *MedicineType
	Description *string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Medicine, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Medicine{}, apperr.InvalidInputf("name is required")
	}
	if !in.Type.Valid() {
		return Medicine{}, apperr.InvalidInputf("type must be one of: tablet, drop, liquid, other")
	}

	now := s.now()
	m := Medicine{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, m)
	})
	if err != nil {
		return Medicine{}, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Medicine, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (Medicine, error) {
	m, err := s.repo.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Medicine{}, apperr.NotFoundf("Medicine not found")
		}
		return Medicine{}, err
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (Medicine, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return Medicine{}, apperr.InvalidInputf("name cannot be empty")
	}
	if in.Type != nil && !in.Type.Valid() {
		return Medicine{}, apperr.InvalidInputf("type must be one of: tablet, drop, liquid, other")
	}

	var out Medicine
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		m, err := s.repo.GetForUser(ctx, id, userID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFoundf("Medicine not found")
			}
			return err
		}

		if in.Name != nil {
			m.Name = strings.TrimSpace(*in.Name)
		}
		if in.Type != nil {
			m.Type = *in.Type
		}
		if in.Description != nil {
			m.Description = *in.Description
		}
		m.UpdatedAt = s.now()

		if err := s.repo.Update(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return Medicine{}, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteForUser(ctx, id, userID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFoundf("Medicine not found")
			}
			return err
		}
		return nil
	})
}

// Owned verifica que la medicina exista y pertenezca al usuario
// (FK de medicine events).
func (s *Service) Owned(ctx context.Context, userID, medicineID string) error {
	_, err := s.repo.GetForUser(ctx, medicineID, userID)
	return err
}
