package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/catalog"
	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
)

type RecipeService interface {
	Create(ctx context.Context, name string, lines []types.RecipeIngredient) (*types.Recipe, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Recipe, error)
	List(ctx context.Context) ([]*types.Recipe, error)
	Update(ctx context.Context, id uuid.UUID, name string, lines []types.RecipeIngredient) (*types.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipeService struct {
	db             *gorm.DB
	log            *logger.Logger
	recipeRepo     catalogrepos.RecipeRepo
	ingredientRepo catalogrepos.IngredientRepo
}

func NewRecipeService(
	db *gorm.DB,
	baseLog *logger.Logger,
	recipeRepo catalogrepos.RecipeRepo,
	ingredientRepo catalogrepos.IngredientRepo,
) RecipeService {
	return &recipeService{
		db:             db,
		log:            baseLog.With("service", "RecipeService"),
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
	}
}

func (rs *recipeService) Create(ctx context.Context, name string, lines []types.RecipeIngredient) (*types.Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.InvalidInput("recipe name is required")
	}
	if err := rs.validateLines(ctx, lines); err != nil {
		return nil, err
	}
	recipe := &types.Recipe{ID: uuid.New(), Name: name}
	if err := recipe.SetIngredients(lines); err != nil {
		return nil, apperr.InvalidInput(fmt.Sprintf("encode ingredient lines: %v", err))
	}
	if err := rs.recipeRepo.Create(ctx, nil, recipe); err != nil {
		return nil, apperr.MapDBError("create recipe", err)
	}
	return recipe, nil
}

func (rs *recipeService) Get(ctx context.Context, id uuid.UUID) (*types.Recipe, error) {
	recipe, err := rs.recipeRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apperr.MapDBError("load recipe", err)
	}
	return recipe, nil
}

func (rs *recipeService) List(ctx context.Context) ([]*types.Recipe, error) {
	recipes, err := rs.recipeRepo.List(ctx, nil)
	if err != nil {
		return nil, apperr.MapDBError("list recipes", err)
	}
	return recipes, nil
}

func (rs *recipeService) Update(ctx context.Context, id uuid.UUID, name string, lines []types.RecipeIngredient) (*types.Recipe, error) {
	recipe, err := rs.recipeRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apperr.MapDBError("load recipe", err)
	}
	if name = strings.TrimSpace(name); name != "" {
		recipe.Name = name
	}
	if lines != nil {
		if err := rs.validateLines(ctx, lines); err != nil {
			return nil, err
		}
		if err := recipe.SetIngredients(lines); err != nil {
			return nil, apperr.InvalidInput(fmt.Sprintf("encode ingredient lines: %v", err))
		}
	}
	if err := rs.recipeRepo.Update(ctx, nil, recipe); err != nil {
		return nil, apperr.MapDBError("update recipe", err)
	}
	return recipe, nil
}

func (rs *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := rs.recipeRepo.Delete(ctx, nil, id); err != nil {
		return apperr.MapDBError("delete recipe", err)
	}
	return nil
}

// validateLines checks that every referenced ingredient exists and every
// quantity is non-negative before the blob is written.
func (rs *recipeService) validateLines(ctx context.Context, lines []types.RecipeIngredient) error {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		if line.IngredientID == uuid.Nil {
			return apperr.InvalidInput("ingredient id is required on every recipe line")
		}
		if line.Quantity.IsNegative() {
			return apperr.InvalidInput(fmt.Sprintf("ingredient %s has a negative quantity", line.IngredientID))
		}
		ids = append(ids, line.IngredientID)
	}
	found, err := rs.ingredientRepo.GetByIDs(ctx, nil, ids)
	if err != nil {
		return apperr.MapDBError("validate ingredients", err)
	}
	known := make(map[uuid.UUID]bool, len(found))
	for _, ing := range found {
		known[ing.ID] = true
	}
	for _, line := range lines {
		if !known[line.IngredientID] {
			return apperr.InvalidInput(fmt.Sprintf("unknown ingredient %s", line.IngredientID))
		}
	}
	return nil
}
