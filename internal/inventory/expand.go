package inventory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ovenline/bakehouse-backend/internal/domain/catalog"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
)

// Expand multiplies every ingredient line of a recipe by batchCount. Line
// order is preserved and duplicate ingredients within one recipe are not
// merged; aggregation across recipes happens in the orchestrator.
func Expand(recipe *catalog.Recipe, batchCount int) ([]Requirement, error) {
	if recipe == nil {
		return nil, apperr.InvalidInput("recipe is required")
	}
	if batchCount < 0 {
		return nil, apperr.InvalidInput(fmt.Sprintf("batch count must be non-negative, got %d", batchCount))
	}
	lines, err := recipe.Ingredients()
	if err != nil {
		return nil, apperr.InvalidInput(fmt.Sprintf("recipe %s has malformed ingredient data: %v", recipe.ID, err))
	}
	factor := decimal.NewFromInt(int64(batchCount))
	out := make([]Requirement, 0, len(lines))
	for _, line := range lines {
		unit := strings.ToUpper(strings.TrimSpace(line.Unit))
		if unit == "" {
			unit = DefaultUnit
		}
		out = append(out, Requirement{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity.Mul(factor),
			Unit:         unit,
		})
	}
	return out, nil
}

// Aggregate sums requirements by ingredient across recipes, keeping the
// first-seen ingredient order. The same ingredient appearing under two
// different units cannot be summed and is rejected rather than guessed at.
func Aggregate(reqs []Requirement) ([]Requirement, error) {
	index := make(map[uuid.UUID]int, len(reqs))
	out := make([]Requirement, 0, len(reqs))
	for _, req := range reqs {
		if i, seen := index[req.IngredientID]; seen {
			if out[i].Unit != req.Unit {
				return nil, apperr.InvalidInput(fmt.Sprintf(
					"ingredient %s appears with mixed units %s and %s", req.IngredientID, out[i].Unit, req.Unit))
			}
			out[i].Quantity = out[i].Quantity.Add(req.Quantity)
			continue
		}
		index[req.IngredientID] = len(out)
		out = append(out, req)
	}
	return out, nil
}
