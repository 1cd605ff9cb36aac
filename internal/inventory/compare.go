package inventory

import (
	"github.com/shopspring/decimal"
)

// Compare walks the aggregated requirements in order and emits a draft for
// every ingredient whose stock falls short. Ingredients absent from the
// snapshot count as zero available; fully covered ingredients are omitted.
func Compare(reqs []Requirement, snapshot StockSnapshot) []ShortageDraft {
	drafts := make([]ShortageDraft, 0)
	for _, req := range reqs {
		available := decimal.Zero
		if entry, ok := snapshot[req.IngredientID]; ok {
			available = entry.Quantity
		}
		deficit := req.Quantity.Sub(available)
		if deficit.LessThanOrEqual(decimal.Zero) {
			continue
		}
		drafts = append(drafts, ShortageDraft{
			IngredientID:      req.IngredientID,
			RequiredQuantity:  req.Quantity,
			AvailableQuantity: available,
			Deficit:           deficit,
			Unit:              req.Unit,
		})
	}
	return drafts
}
