package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestCompareEmitsOnlyDeficits(t *testing.T) {
	flour := uuid.New()
	sugar := uuid.New()
	yeast := uuid.New()

	reqs := []Requirement{
		{IngredientID: flour, Quantity: decimal.RequireFromString("1200"), Unit: "GM"},
		{IngredientID: sugar, Quantity: decimal.RequireFromString("300"), Unit: "GM"},
		{IngredientID: yeast, Quantity: decimal.RequireFromString("40"), Unit: "GM"},
	}
	snapshot := StockSnapshot{
		flour: {Quantity: decimal.RequireFromString("500"), Unit: "GM"},
		sugar: {Quantity: decimal.RequireFromString("300"), Unit: "GM"},
		// yeast missing entirely
	}

	drafts := Compare(reqs, snapshot)
	if len(drafts) != 2 {
		t.Fatalf("want 2 shortages, got %d", len(drafts))
	}
	if drafts[0].IngredientID != flour {
		t.Fatalf("ordering must follow requirements, got %+v", drafts[0])
	}
	if !drafts[0].Deficit.Equal(decimal.RequireFromString("700")) {
		t.Fatalf("flour deficit: want 700, got %s", drafts[0].Deficit)
	}
	if drafts[1].IngredientID != yeast {
		t.Fatalf("missing stock entry should be treated as zero available: %+v", drafts[1])
	}
	if !drafts[1].AvailableQuantity.IsZero() || !drafts[1].Deficit.Equal(decimal.RequireFromString("40")) {
		t.Fatalf("yeast shortage wrong: %+v", drafts[1])
	}
}

func TestCompareFullyCoveredReturnsEmpty(t *testing.T) {
	flour := uuid.New()
	reqs := []Requirement{
		{IngredientID: flour, Quantity: decimal.RequireFromString("100"), Unit: "GM"},
	}
	snapshot := StockSnapshot{
		flour: {Quantity: decimal.RequireFromString("100"), Unit: "GM"},
	}
	drafts := Compare(reqs, snapshot)
	if len(drafts) != 0 {
		t.Fatalf("want no shortages when available >= required, got %d", len(drafts))
	}
}

func TestCompareEmptyRequirements(t *testing.T) {
	drafts := Compare(nil, StockSnapshot{})
	if len(drafts) != 0 {
		t.Fatalf("want empty result, got %d", len(drafts))
	}
}
