package medicines

import "time"

// MedicineType es la presentación del medicamento.
// @Enum tablet, drop, liquid, other
type MedicineType string

const (
	TypeTablet MedicineType = "tablet"
	TypeDrop   MedicineType = "drop"
	TypeLiquid MedicineType = "liquid"
	TypeOther  MedicineType = "other"
)

// Valid chequea el set cerrado a nivel aplicación, antes de persistir.
func (t MedicineType) Valid() bool {
	switch t {
	case TypeTablet, TypeDrop, TypeLiquid, TypeOther:
		return true
	default:
		return false
	}
}

type Medicine struct {
	ID     string
	UserID string

	Name        string
	Type        MedicineType
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}
