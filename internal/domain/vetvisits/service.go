package vetvisits

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/domain/events"
	"barkly-backend/internal/ports/storage"
)

type Service struct {
	repo Repository
	dogs events.OwnershipChecker
	vets events.OwnershipChecker
	tx   storage.TxManager
	now  func() time.Time
}

func NewService(repo Repository, dogs, vets events.OwnershipChecker, tx storage.TxManager) *Service {
	return &Service{
		repo: repo,
		dogs: dogs,
		vets: vets,
		tx:   tx,
		now:  time.Now,
	}
}

type CreateInput struct {
	DogID     string
	VetID     string
	Date      time.Time
	TimeOfDay events.TimeOfDay
	Notes     string
}

type UpdateInput struct {
	DogID     *string
	VetID     *string
	Date      *time.Time
	TimeOfDay *events.TimeOfDay
	Notes     *string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (VetVisit, error) {
	if !in.TimeOfDay.Valid() {
		return VetVisit{}, apperr.InvalidInputf("Invalid time of day")
	}
	if in.Date.IsZero() {
		return VetVisit{}, apperr.InvalidInputf("date is required")
	}

	if err := s.dogs.Owned(ctx, userID, in.DogID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return VetVisit{}, apperr.NotFoundf("Dog not found or access denied")
		}
		return VetVisit{}, err
	}
	if err := s.vets.Owned(ctx, userID, in.VetID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return VetVisit{}, apperr.NotFoundf("Vet not found or access denied")
		}
		return VetVisit{}, err
	}

	now := s.now()
	v := VetVisit{
		ID:        uuid.NewString(),
		DogID:     in.DogID,
		VetID:     in.VetID,
		Date:      in.Date,
		TimeOfDay: in.TimeOfDay,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, v)
	})
	if err != nil {
		return VetVisit{}, err
	}
	return v, nil
}

func (s *Service) List(ctx context.Context, userID, dogID string) ([]VetVisit, error) {
	if dogID != "" {
		if err := s.dogs.Owned(ctx, userID, dogID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, apperr.Forbiddenf("Access denied to this dog")
			}
			return nil, err
		}
	}
	return s.repo.ListForUser(ctx, userID, dogID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (VetVisit, error) {
	return s.load(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (VetVisit, error) {
	if in.TimeOfDay != nil && !in.TimeOfDay.Valid() {
		return VetVisit{}, apperr.InvalidInputf("Invalid time of day")
	}

	var out VetVisit
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, err := s.load(ctx, userID, id)
		if err != nil {
			return err
		}

		if in.DogID != nil && *in.DogID != v.DogID {
			if err := s.dogs.Owned(ctx, userID, *in.DogID); err != nil {
				if errors.Is(err, apperr.ErrNotFound) {
					return apperr.NotFoundf("New dog not found or access denied")
				}
				return err
			}
			v.DogID = *in.DogID
		}
		if in.VetID != nil && *in.VetID != v.VetID {
			if err := s.vets.Owned(ctx, userID, *in.VetID); err != nil {
				if errors.Is(err, apperr.ErrNotFound) {
					return apperr.NotFoundf("New vet not found or access denied")
				}
				return err
			}
			v.VetID = *in.VetID
		}
		if in.Date != nil {
			v.Date = *in.Date
		}
		if in.TimeOfDay != nil {
			v.TimeOfDay = *in.TimeOfDay
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
		return VetVisit{}, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.load(ctx, userID, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
}

// load: id inexistente da 404, visita de un perro ajeno da 403.
func (s *Service) load(ctx context.Context, userID, id string) (VetVisit, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return VetVisit{}, apperr.NotFoundf("Vet visit not found")
		}
		return VetVisit{}, err
	}
	if err := s.dogs.Owned(ctx, userID, v.DogID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return VetVisit{}, apperr.Forbiddenf("Access denied")
		}
		return VetVisit{}, err
	}
	return v, nil
}
