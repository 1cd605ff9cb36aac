package catalog

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RecipeIngredient is one ordered line of a recipe. Lines are stored as a
// jsonb blob on the recipe row and decoded before any computation.
type RecipeIngredient struct {
	IngredientID uuid.UUID       `json:"ingredient_id" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
}

type Recipe struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	IngredientData datatypes.JSON `gorm:"type:jsonb" json:"ingredient_data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Recipe) TableName() string { return "recipes" }

// Ingredients decodes the stored jsonb lines, preserving their order.
func (r *Recipe) Ingredients() ([]RecipeIngredient, error) {
	if len(r.IngredientData) == 0 {
		return []RecipeIngredient{}, nil
	}
	var lines []RecipeIngredient
	if err := json.Unmarshal(r.IngredientData, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *Recipe) SetIngredients(lines []RecipeIngredient) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	r.IngredientData = datatypes.JSON(raw)
	return nil
}
