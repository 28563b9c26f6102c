package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"barkly-backend/internal/apperr"
	"barkly-backend/internal/ports/storage"
)

// OwnershipChecker responde si una entidad existe y pertenece al
// usuario. Lo implementan los services de dogs y custom events.
type OwnershipChecker interface {
	Owned(ctx context.Context, userID, id string) error
}

type Service struct {
	repo    Repository
	dogs    OwnershipChecker
	customs OwnershipChecker
	tx      storage.TxManager
	now     func() time.Time
}

func NewService(repo Repository, dogs, customs OwnershipChecker, tx storage.TxManager) *Service {
	return &Service{
		repo:    repo,
		dogs:    dogs,
		customs: customs,
		tx:      tx,
		now:     time.Now,
	}
}

type CreateInput struct {
	DogID         string
	EventType     EventType
	CustomEventID string
	Date          time.Time
	TimeOfDay     TimeOfDay
	PooQuality    *int
	VomitQuality  *VomitQuality
	Notes         string
}

type UpdateInput struct {
	DogID         *string
	EventType     *EventType
	CustomEventID *string
	Date          *time.Time
	TimeOfDay     *TimeOfDay
	PooQuality    *int
	VomitQuality  *VomitQuality
	Notes         *string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Event, error) {
	hasType := in.EventType != ""
	hasCustom := strings.TrimSpace(in.CustomEventID) != ""
	if !hasType && !hasCustom {
		return Event{}, apperr.InvalidInputf("Either event_type or custom_event_id must be provided")
	}
	if hasType && hasCustom {
		return Event{}, apperr.InvalidInputf("Cannot specify both event_type and custom_event_id")
	}
	if hasType && !in.EventType.Valid() {
		return Event{}, apperr.InvalidInputf("Invalid event type")
	}
	if err := validateDetails(in.TimeOfDay, in.PooQuality, in.VomitQuality); err != nil {
		return Event{}, err
	}
	if in.Date.IsZero() {
		return Event{}, apperr.InvalidInputf("date is required")
	}

	if err := s.dogs.Owned(ctx, userID, in.DogID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Event{}, apperr.NotFoundf("Dog not found or access denied")
		}
		return Event{}, err
	}
	if hasCustom {
		if err := s.customs.Owned(ctx, userID, in.CustomEventID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return Event{}, apperr.NotFoundf("Custom event not found or access denied")
			}
			return Event{}, err
		}
	}

	now := s.now()
	e := Event{
		ID:            uuid.NewString(),
		DogID:         in.DogID,
		EventType:     in.EventType,
		CustomEventID: strings.TrimSpace(in.CustomEventID),
		Date:          in.Date,
		TimeOfDay:     in.TimeOfDay,
		PooQuality:    in.PooQuality,
		VomitQuality:  in.VomitQuality,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, e)
	})
	if err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, userID, dogID string) ([]Event, error) {
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

func (s *Service) Get(ctx context.Context, userID, id string) (Event, error) {
	e, err := s.load(ctx, userID, id)
	if err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (Event, error) {
	// "" no es un miembro del enum: no hay forma de des-setear el tipo
	// por update, un evento nunca queda sin tipo.
	if in.EventType != nil && !in.EventType.Valid() {
		return Event{}, apperr.InvalidInputf("Invalid event type")
	}
	if in.TimeOfDay != nil && !in.TimeOfDay.Valid() {
		return Event{}, apperr.InvalidInputf("Invalid time of day")
	}
	if in.PooQuality != nil && (*in.PooQuality < 1 || *in.PooQuality > 7) {
		return Event{}, apperr.InvalidInputf("poo_quality must be between 1 and 7")
	}
	if in.VomitQuality != nil && !in.VomitQuality.Valid() {
		return Event{}, apperr.InvalidInputf("Invalid vomit quality")
	}

	var out Event
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		e, err := s.load(ctx, userID, id)
		if err != nil {
			return err
		}

		if in.DogID != nil && *in.DogID != e.DogID {
			if err := s.dogs.Owned(ctx, userID, *in.DogID); err != nil {
				if errors.Is(err, apperr.ErrNotFound) {
					return apperr.NotFoundf("New dog not found or access denied")
				}
				return err
			}
			e.DogID = *in.DogID
		}
		if in.CustomEventID != nil {
			// "" también pasa por el lookup: no existe, da 404.
			if err := s.customs.Owned(ctx, userID, *in.CustomEventID); err != nil {
				if errors.Is(err, apperr.ErrNotFound) {
					return apperr.NotFoundf("Custom event not found or access denied")
				}
				return err
			}
			e.CustomEventID = *in.CustomEventID
		}
		if in.EventType != nil {
			e.EventType = *in.EventType
		}
		if in.Date != nil {
			e.Date = *in.Date
		}
		if in.TimeOfDay != nil {
			e.TimeOfDay = *in.TimeOfDay
		}
		if in.PooQuality != nil {
			e.PooQuality = in.PooQuality
		}
		if in.VomitQuality != nil {
			e.VomitQuality = in.VomitQuality
		}
		if in.Notes != nil {
			e.Notes = *in.Notes
		}
		e.UpdatedAt = s.now()

		if err := s.repo.Update(ctx, e); err != nil {
			return err
		}
		out = e
		return nil
	})
	if err != nil {
		return Event{}, err
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

// load trae el evento por id y recién después chequea que el perro sea
// del usuario: id inexistente da 404, evento ajeno da 403.
func (s *Service) load(ctx context.Context, userID, id string) (Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Event{}, apperr.NotFoundf("Event not found")
		}
		return Event{}, err
	}
	if err := s.dogs.Owned(ctx, userID, e.DogID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Event{}, apperr.Forbiddenf("Access denied")
		}
		return Event{}, err
	}
	return e, nil
}

func validateDetails(tod TimeOfDay, poo *int, vomit *VomitQuality) error {
	if !tod.Valid() {
		return apperr.InvalidInputf("Invalid time of day")
	}
	if poo != nil && (*poo < 1 || *poo > 7) {
		return apperr.InvalidInputf("poo_quality must be between 1 and 7")
	}
	if vomit != nil && !vomit.Valid() {
		return apperr.InvalidInputf("Invalid vomit quality")
	}
	return nil
}
