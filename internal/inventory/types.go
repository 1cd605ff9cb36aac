// Package inventory holds the pure computation core of the inventory-check
// engine: quantity normalization, recipe expansion, requirement aggregation
// and shortage comparison. Nothing in this package touches the database.
package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Requirement is an absolute ingredient quantity needed for some number of
// batches of a recipe.
type Requirement struct {
	IngredientID uuid.UUID       `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
}

// StockEntry is the on-hand quantity of one ingredient at snapshot time.
type StockEntry struct {
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// StockSnapshot maps ingredient ids to what the store room held at the moment
// the check ran.
type StockSnapshot map[uuid.UUID]StockEntry

// ShortageDraft is an unsaved shortage: comparator output before the
// orchestrator attaches it to a persisted check.
type ShortageDraft struct {
	IngredientID      uuid.UUID       `json:"ingredient_id"`
	RequiredQuantity  decimal.Decimal `json:"required_quantity"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
	Deficit           decimal.Decimal `json:"deficit"`
	Unit              string          `json:"unit"`
}
