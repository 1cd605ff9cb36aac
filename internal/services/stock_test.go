package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/catalog"
	productionrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/production"
	"github.com/ovenline/bakehouse-backend/internal/data/repos/testutil"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
)

func newStockService(tb testing.TB, db *gorm.DB) StockService {
	tb.Helper()
	log := testutil.Logger(tb)
	return NewStockService(
		db,
		log,
		productionrepos.NewStockRepo(db, log),
		catalogrepos.NewIngredientRepo(db, log),
		nil,
	)
}

func TestStockUpsertNormalizesDisplay(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	svc := newStockService(t, db)

	flour := testutil.SeedIngredient(t, ctx, db, "Flour", "GM")
	view, err := svc.Upsert(ctx, flour.ID, dec(t, "1500"), "gm")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if view.Unit != "GM" {
		t.Fatalf("stored unit = %q, want GM", view.Unit)
	}
	if view.DisplayQuantity != "1.50" || view.DisplayUnit != "KG" {
		t.Fatalf("display = %s %s, want 1.50 KG", view.DisplayQuantity, view.DisplayUnit)
	}
	if view.IngredientName != "Flour" {
		t.Fatalf("ingredient name = %q, want Flour", view.IngredientName)
	}

	// Upserting again replaces the level instead of adding a second row.
	if _, err := svc.Upsert(ctx, flour.ID, dec(t, "800"), "GM"); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	views, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("stock rows = %d, want 1", len(views))
	}
	if !views[0].Quantity.Equal(dec(t, "800")) {
		t.Fatalf("quantity after upsert = %s, want 800", views[0].Quantity)
	}
}

func TestStockUpsertValidation(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	svc := newStockService(t, db)

	if _, err := svc.Upsert(ctx, uuid.New(), dec(t, "10"), "GM"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Upsert unknown ingredient = %v, want ErrNotFound", err)
	}

	flour := testutil.SeedIngredient(t, ctx, db, "Flour", "GM")
	if _, err := svc.Upsert(ctx, flour.ID, dec(t, "-1"), "GM"); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("Upsert negative quantity = %v, want ErrInvalidInput", err)
	}
}
