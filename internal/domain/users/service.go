package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/ports/auth"
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

// Upsert registra la identidad verificada en users (primer login la crea).
func (s *Service) Upsert(ctx context.Context, c auth.Claims) (User, error) {
	if strings.TrimSpace(c.UserID) == "" {
		return User{}, apperr.Unauthenticatedf("Could not validate credentials")
	}

	now := s.now()
	var out User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.repo.Upsert(ctx, User{
			ID:        c.UserID,
			Email:     strings.TrimSpace(c.Email),
			Name:      strings.TrimSpace(c.Name),
			Picture:   strings.TrimSpace(c.Picture),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		out = u
		return nil
	})
	return out, err
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return User{}, apperr.NotFoundf("User not found")
		}
		return User{}, err
	}
	return u, nil
}

// DeleteAccount borra la cuenta y, vía cascada de storage, todos sus
// perros, vets, medicinas, eventos custom y registros dependientes.
func (s *Service) DeleteAccount(ctx context.Context, id string) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFoundf("User not found")
			}
			return err
		}
		return nil
	})
}
