package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	types "github.com/ovenline/bakehouse-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "x",
		FirstName:    "A",
		LastName:     "B",
		Role:         types.RoleBaker,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedIngredient(tb testing.TB, ctx context.Context, tx *gorm.DB, name, unit string) *types.Ingredient {
	tb.Helper()
	ing := &types.Ingredient{
		ID:          uuid.New(),
		Name:        name,
		DefaultUnit: unit,
	}
	if err := tx.WithContext(ctx).Create(ing).Error; err != nil {
		tb.Fatalf("seed ingredient: %v", err)
	}
	return ing
}

func SeedRecipe(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, lines []types.RecipeIngredient) *types.Recipe {
	tb.Helper()
	r := &types.Recipe{
		ID:   uuid.New(),
		Name: name,
	}
	if err := r.SetIngredients(lines); err != nil {
		tb.Fatalf("seed recipe lines: %v", err)
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed recipe: %v", err)
	}
	return r
}

func SeedSchedule(tb testing.TB, ctx context.Context, tx *gorm.DB, entries []types.ScheduleEntry) *types.ProductionSchedule {
	tb.Helper()
	s := &types.ProductionSchedule{
		ID:        uuid.New(),
		WeekStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	if err := s.SetEntries(entries); err != nil {
		tb.Fatalf("seed schedule entries: %v", err)
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed schedule: %v", err)
	}
	return s
}

func SeedStock(tb testing.TB, ctx context.Context, tx *gorm.DB, ingredientID uuid.UUID, quantity, unit string) *types.StockLevel {
	tb.Helper()
	sl := &types.StockLevel{
		ID:           uuid.New(),
		IngredientID: ingredientID,
		Quantity:     decimal.RequireFromString(quantity),
		Unit:         unit,
	}
	if err := tx.WithContext(ctx).Create(sl).Error; err != nil {
		tb.Fatalf("seed stock: %v", err)
	}
	return sl
}
