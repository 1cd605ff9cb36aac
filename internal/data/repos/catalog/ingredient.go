package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
)

type IngredientRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Ingredient) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Ingredient, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Ingredient, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Ingredient, error)
}

type ingredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIngredientRepo(db *gorm.DB, baseLog *logger.Logger) IngredientRepo {
	return &ingredientRepo{db: db, log: baseLog.With("repo", "IngredientRepo")}
}

func (r *ingredientRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Ingredient) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *ingredientRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Ingredient, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.Ingredient
	if err := t.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ingredientRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Ingredient, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Ingredient
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ingredientRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Ingredient, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Ingredient
	if err := t.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
