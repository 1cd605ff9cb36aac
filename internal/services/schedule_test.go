package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/catalog"
	productionrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/production"
	"github.com/ovenline/bakehouse-backend/internal/data/repos/testutil"
	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
)

func newScheduleService(tb testing.TB, db *gorm.DB) ScheduleService {
	tb.Helper()
	log := testutil.Logger(tb)
	return NewScheduleService(
		db,
		log,
		productionrepos.NewScheduleRepo(db, log),
		catalogrepos.NewRecipeRepo(db, log),
		productionrepos.NewCheckRepo(db, log),
		productionrepos.NewShortageRepo(db, log),
	)
}

func TestScheduleCreateRejectsUnknownRecipe(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	svc := newScheduleService(t, db)

	weekStart := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(ctx, weekStart, []types.ScheduleEntry{
		{RecipeID: uuid.New(), BatchCount: 1},
	})
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("Create with unknown recipe = %v, want ErrInvalidInput", err)
	}
}

func TestScheduleDeleteCascadesChecks(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	scheduleSvc := newScheduleService(t, db)
	checkSvc := newCheckService(t, db)

	flour := testutil.SeedIngredient(t, ctx, db, "Flour", "GM")
	recipe := testutil.SeedRecipe(t, ctx, db, "Rye Loaf", []types.RecipeIngredient{
		{IngredientID: flour.ID, Quantity: dec(t, "600"), Unit: "GM"},
	})
	schedule := testutil.SeedSchedule(t, ctx, db, []types.ScheduleEntry{
		{RecipeID: recipe.ID, BatchCount: 2},
	})

	if _, err := checkSvc.Run(ctx, schedule.ID, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if err := scheduleSvc.Delete(ctx, schedule.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := scheduleSvc.Get(ctx, schedule.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Get after delete = %v, want ErrNotFound", err)
	}

	var checks int64
	if err := db.WithContext(ctx).Model(&types.InventoryCheck{}).
		Where("schedule_id = ?", schedule.ID).Count(&checks).Error; err != nil {
		t.Fatalf("count checks: %v", err)
	}
	if checks != 0 {
		t.Fatalf("checks left after cascade = %d, want 0", checks)
	}
	var shortages int64
	if err := db.WithContext(ctx).Model(&types.IngredientShortage{}).Count(&shortages).Error; err != nil {
		t.Fatalf("count shortages: %v", err)
	}
	if shortages != 0 {
		t.Fatalf("shortages left after cascade = %d, want 0", shortages)
	}
}

func TestScheduleDeleteUnknown(t *testing.T) {
	db := testutil.DB(t)
	svc := newScheduleService(t, db)

	if err := svc.Delete(context.Background(), uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Delete unknown schedule = %v, want ErrNotFound", err)
	}
}
