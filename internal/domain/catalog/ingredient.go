package catalog

import (
	"time"

	"github.com/google/uuid"
)

type Ingredient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	DefaultUnit string    `gorm:"not null;default:'UNIT'" json:"default_unit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Ingredient) TableName() string { return "ingredients" }
