package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// CheckStatusCompleted is the only persisted status: a run either commits
	// a completed check or writes nothing at all.
	CheckStatusCompleted = "COMPLETED"

	ResolutionPending  = "PENDING"
	ResolutionResolved = "RESOLVED"
)

type InventoryCheck struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ScheduleID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"schedule_id"`
	UserID        *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	Status        string     `gorm:"not null" json:"status"`
	ShortageCount int        `gorm:"not null;default:0" json:"shortage_count"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (InventoryCheck) TableName() string { return "inventory_checks" }

// IngredientShortage is owned by exactly one check and is deleted before it,
// honoring the foreign key. Deficit is always required minus available,
// floored at zero; rows with zero deficit are never persisted.
type IngredientShortage struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CheckID           uuid.UUID       `gorm:"type:uuid;index;not null" json:"check_id"`
	IngredientID      uuid.UUID       `gorm:"type:uuid;index;not null" json:"ingredient_id"`
	RequiredQuantity  decimal.Decimal `gorm:"type:numeric(20,6);not null" json:"required_quantity"`
	AvailableQuantity decimal.Decimal `gorm:"type:numeric(20,6);not null" json:"available_quantity"`
	Deficit           decimal.Decimal `gorm:"type:numeric(20,6);not null" json:"deficit"`
	Unit              string          `gorm:"not null;default:'UNIT'" json:"unit"`
	ResolutionStatus  string          `gorm:"not null;default:'PENDING'" json:"resolution_status"`
	// Position preserves the first-seen requirement order within a check.
	Position int `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `json:"created_at"`
}

func (IngredientShortage) TableName() string { return "ingredient_shortages" }
