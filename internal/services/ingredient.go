package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/catalog"
	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/inventory"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
)

type IngredientService interface {
	Create(ctx context.Context, name, defaultUnit string) (*types.Ingredient, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Ingredient, error)
	List(ctx context.Context) ([]*types.Ingredient, error)
}

type ingredientService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo catalogrepos.IngredientRepo
}

func NewIngredientService(db *gorm.DB, baseLog *logger.Logger, repo catalogrepos.IngredientRepo) IngredientService {
	return &ingredientService{
		db:   db,
		log:  baseLog.With("service", "IngredientService"),
		repo: repo,
	}
}

func (is *ingredientService) Create(ctx context.Context, name, defaultUnit string) (*types.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.InvalidInput("ingredient name is required")
	}
	defaultUnit = strings.ToUpper(strings.TrimSpace(defaultUnit))
	if defaultUnit == "" {
		defaultUnit = inventory.DefaultUnit
	}
	row := &types.Ingredient{ID: uuid.New(), Name: name, DefaultUnit: defaultUnit}
	if err := is.repo.Create(ctx, nil, row); err != nil {
		return nil, apperr.MapDBError("create ingredient", err)
	}
	return row, nil
}

func (is *ingredientService) Get(ctx context.Context, id uuid.UUID) (*types.Ingredient, error) {
	row, err := is.repo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apperr.MapDBError("load ingredient", err)
	}
	return row, nil
}

func (is *ingredientService) List(ctx context.Context) ([]*types.Ingredient, error) {
	rows, err := is.repo.List(ctx, nil)
	if err != nil {
		return nil, apperr.MapDBError("list ingredients", err)
	}
	return rows, nil
}
