package inventory

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ovenline/bakehouse-backend/internal/domain/catalog"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
)

func buildRecipe(t *testing.T, lines []catalog.RecipeIngredient) *catalog.Recipe {
	t.Helper()
	r := &catalog.Recipe{ID: uuid.New(), Name: "test recipe"}
	if err := r.SetIngredients(lines); err != nil {
		t.Fatalf("set ingredients: %v", err)
	}
	return r
}

func TestExpandMultipliesByBatchCount(t *testing.T) {
	flour := uuid.New()
	butter := uuid.New()
	r := buildRecipe(t, []catalog.RecipeIngredient{
		{IngredientID: flour, Quantity: decimal.RequireFromString("200"), Unit: "GM"},
		{IngredientID: butter, Quantity: decimal.RequireFromString("50.5"), Unit: "gm"},
	})

	reqs, err := Expand(r, 6)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("want 2 requirements, got %d", len(reqs))
	}
	if reqs[0].IngredientID != flour || !reqs[0].Quantity.Equal(decimal.RequireFromString("1200")) {
		t.Fatalf("flour requirement wrong: %+v", reqs[0])
	}
	if reqs[1].IngredientID != butter || !reqs[1].Quantity.Equal(decimal.RequireFromString("303")) {
		t.Fatalf("butter requirement wrong: %+v", reqs[1])
	}
	if reqs[1].Unit != "GM" {
		t.Fatalf("unit should be normalized upper-case, got %s", reqs[1].Unit)
	}
}

func TestExpandZeroBatches(t *testing.T) {
	flour := uuid.New()
	r := buildRecipe(t, []catalog.RecipeIngredient{
		{IngredientID: flour, Quantity: decimal.RequireFromString("200"), Unit: "GM"},
	})
	reqs, err := Expand(r, 0)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("ingredient set must be unchanged, got %d lines", len(reqs))
	}
	if !reqs[0].Quantity.IsZero() {
		t.Fatalf("want zero quantity, got %s", reqs[0].Quantity)
	}
}

func TestExpandRejectsNegativeBatchCount(t *testing.T) {
	r := buildRecipe(t, []catalog.RecipeIngredient{
		{IngredientID: uuid.New(), Quantity: decimal.RequireFromString("1"), Unit: "KG"},
	})
	_, err := Expand(r, -1)
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestExpandPreservesOrderAndDuplicates(t *testing.T) {
	flour := uuid.New()
	r := buildRecipe(t, []catalog.RecipeIngredient{
		{IngredientID: flour, Quantity: decimal.RequireFromString("100"), Unit: "GM"},
		{IngredientID: flour, Quantity: decimal.RequireFromString("20"), Unit: "GM"},
	})
	reqs, err := Expand(r, 2)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("expander must not deduplicate, got %d lines", len(reqs))
	}
}

func TestAggregateSumsAcrossRecipes(t *testing.T) {
	flour := uuid.New()
	sugar := uuid.New()
	reqs := []Requirement{
		{IngredientID: flour, Quantity: decimal.RequireFromString("1200"), Unit: "GM"},
		{IngredientID: sugar, Quantity: decimal.RequireFromString("300"), Unit: "GM"},
		{IngredientID: flour, Quantity: decimal.RequireFromString("800"), Unit: "GM"},
	}
	agg, err := Aggregate(reqs)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(agg) != 2 {
		t.Fatalf("want 2 aggregated rows, got %d", len(agg))
	}
	// first-seen order: flour then sugar
	if agg[0].IngredientID != flour || !agg[0].Quantity.Equal(decimal.RequireFromString("2000")) {
		t.Fatalf("flour aggregate wrong: %+v", agg[0])
	}
	if agg[1].IngredientID != sugar {
		t.Fatalf("sugar should keep first-seen position: %+v", agg[1])
	}
}

func TestAggregateRejectsMixedUnits(t *testing.T) {
	flour := uuid.New()
	reqs := []Requirement{
		{IngredientID: flour, Quantity: decimal.RequireFromString("1"), Unit: "KG"},
		{IngredientID: flour, Quantity: decimal.RequireFromString("500"), Unit: "GM"},
	}
	_, err := Aggregate(reqs)
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput for mixed units, got %v", err)
	}
}
