package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
)

type RecipeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Recipe) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recipe, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Recipe, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Recipe, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.Recipe) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type recipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	return &recipeRepo{db: db, log: baseLog.With("repo", "RecipeRepo")}
}

func (r *recipeRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Recipe) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *recipeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recipe, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.Recipe
	if err := t.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *recipeRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Recipe, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Recipe
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recipeRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Recipe, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Recipe
	if err := t.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recipeRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Recipe) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Save(row).Error
}

func (r *recipeRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Where("id = ?", id).Delete(&types.Recipe{}).Error
}
