package production

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
)

type StockRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, row *types.StockLevel) error
	GetByIngredientIDs(ctx context.Context, tx *gorm.DB, ingredientIDs []uuid.UUID) ([]*types.StockLevel, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.StockLevel, error)
}

type stockRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStockRepo(db *gorm.DB, baseLog *logger.Logger) StockRepo {
	return &stockRepo{db: db, log: baseLog.With("repo", "StockRepo")}
}

func (r *stockRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.StockLevel) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ingredient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "unit", "updated_at"}),
	}).Create(row).Error
}

func (r *stockRepo) GetByIngredientIDs(ctx context.Context, tx *gorm.DB, ingredientIDs []uuid.UUID) ([]*types.StockLevel, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.StockLevel
	if len(ingredientIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("ingredient_id IN ?", ingredientIDs).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *stockRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.StockLevel, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.StockLevel
	if err := t.WithContext(ctx).Order("updated_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
