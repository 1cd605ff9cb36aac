package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockLevel is the current on-hand quantity of one ingredient. It is read as
// part of a snapshot at check time and is not versioned; a race with a
// concurrent stock update is accepted.
type StockLevel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	IngredientID uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"ingredient_id"`
	Quantity     decimal.Decimal `gorm:"type:numeric(20,6);not null" json:"quantity"`
	Unit         string          `gorm:"not null;default:'UNIT'" json:"unit"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (StockLevel) TableName() string { return "stock_levels" }
