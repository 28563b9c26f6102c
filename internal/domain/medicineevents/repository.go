package medicineevents

import "context"

type Repository interface {
	Create(ctx context.Context, m MedicineEvent) error
	GetByID(ctx context.Context, id string) (MedicineEvent, error)
	ListForUser(ctx context.Context, userID, dogID string) ([]MedicineEvent, error)
	Update(ctx context.Context, m MedicineEvent) error
	Delete(ctx context.Context, id string) error
}
