package medicineevents

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
	repo      Repository
	dogs      events.OwnershipChecker
	medicines events.OwnershipChecker
	tx        storage.TxManager
	now       func() time.Time
}

func NewService(repo Repository, dogs, medicines events.OwnershipChecker, tx storage.TxManager) *Service {
	return &Service{
		repo:      repo,
		dogs:      dogs,
		medicines: medicines,
		tx:        tx,
		now:       time.Now,
	}
}

type CreateInput struct {
	DogID      string
	MedicineID string
	Date       time.Time
	TimeOfDay  events.TimeOfDay
	Dosage     float64
	Notes      string
}

type UpdateInput struct {
	DogID      *string
	MedicineID *string
	Date       *time.Time
	TimeOfDay  *events.TimeOfDay
	Dosage     *float64
	Notes      *string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (MedicineEvent, error) {
	if !in.TimeOfDay.Valid() {
		return MedicineEvent{}, apperr.InvalidInputf("Invalid time of day")
	}
	if in.Date.IsZero() {
		return MedicineEvent{}, apperr.InvalidInputf("date is required")
	}
	if in.Dosage <= 0 {
		return MedicineEvent{}, apperr.InvalidInputf("dosage must be greater than 0")
	}

	if err := s.dogs.Owned(ctx, userID, in.DogID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return MedicineEvent{}, apperr.NotFoundf("Dog not found or access denied")
		}
		return MedicineEvent{}, err
	}
	if err := s.medicines.Owned(ctx, userID, in.MedicineID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return MedicineEvent{}, apperr.NotFoundf("Medicine not found or access denied")
		}
		return MedicineEvent{}, err
	}

	now := s.now()
	m := MedicineEvent{
		ID:         uuid.NewString(),
		DogID:      in.DogID,
		MedicineID: in.MedicineID,
		Date:       in.Date,
		TimeOfDay:  in.TimeOfDay,
		Dosage:     in.Dosage,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, m)
	})
	if err != nil {
		return MedicineEvent{}, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, userID, dogID string) ([]MedicineEvent, error) {
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

func (s *Service) Get(ctx context.Context, userID, id string) (MedicineEvent, error) {
	return s.load(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (MedicineEvent, error) {
	if in.TimeOfDay != nil && !in.TimeOfDay.Valid() {
		return MedicineEvent{}, apperr.InvalidInputf("Invalid time of day")
	}
	if in.Dosage != nil && *in.Dosage <= 0 {
		return MedicineEvent{}, apperr.InvalidInputf("dosage must be greater than 0")
	}

	var out MedicineEvent
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		m, err := s.load(ctx, userID, id)
		if err != nil {
			return err
		}

		if in.DogID != nil && *in.DogID != m.DogID {
			if err := s.dogs.Owned(ctx, userID, *in.DogID); err != nil {
				if errors.Is(err, apperr.ErrNotFound) {
					return apperr.NotFoundf("New dog not found or access denied")
				}
				return err
			}
			m.DogID = *in.DogID
		}
		if in.MedicineID != nil && *in.MedicineID != m.MedicineID {
			if err := s.medicines.Owned(ctx, userID, *in.MedicineID); err != nil {
				if errors.Is(err, apperr.ErrNotFound) {
					return apperr.NotFoundf("New medicine not found or access denied")
				}
				return err
			}
			m.MedicineID = *in.MedicineID
		}
		if in.Date != nil {
			m.Date = *in.Date
		}
		if in.TimeOfDay != nil {
			m.TimeOfDay = *in.TimeOfDay
		}
		if in.Dosage != nil {
			m.Dosage = *in.Dosage
		}
		if in.Notes != nil {
			m.Notes = *in.Notes
		}
		m.UpdatedAt = s.now()

		if err := s.repo.Update(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return MedicineEvent{}, err
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

// load: id inexistente da 404, registro de un perro ajeno da 403.
func (s *Service) load(ctx context.Context, userID, id string) (MedicineEvent, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return MedicineEvent{}, apperr.NotFoundf("Medicine event not found")
		}
		return MedicineEvent{}, err
	}
	if err := s.dogs.Owned(ctx, userID, m.DogID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return MedicineEvent{}, apperr.Forbiddenf("Access denied")
		}
		return MedicineEvent{}, err
	}
	return m, nil
}
