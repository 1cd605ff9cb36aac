package production

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
)

type ShortageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.IngredientShortage) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.IngredientShortage, error)
	GetByCheckID(ctx context.Context, tx *gorm.DB, checkID uuid.UUID) ([]*types.IngredientShortage, error)
	UpdateResolution(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error
	// DeleteByCheckIDs removes shortages for the given checks. Callers must
	// invoke this before deleting the checks themselves (FK ordering).
	DeleteByCheckIDs(ctx context.Context, tx *gorm.DB, checkIDs []uuid.UUID) (int64, error)
}

type shortageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShortageRepo(db *gorm.DB, baseLog *logger.Logger) ShortageRepo {
	return &shortageRepo{db: db, log: baseLog.With("repo", "ShortageRepo")}
}

func (r *shortageRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.IngredientShortage) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	return t.WithContext(ctx).Create(&rows).Error
}

func (r *shortageRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.IngredientShortage, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.IngredientShortage
	if err := t.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *shortageRepo) GetByCheckID(ctx context.Context, tx *gorm.DB, checkID uuid.UUID) ([]*types.IngredientShortage, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.IngredientShortage
	if err := t.WithContext(ctx).
		Where("check_id = ?", checkID).
		Order("position ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *shortageRepo) UpdateResolution(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.IngredientShortage{}).
		Where("id = ?", id).
		Update("resolution_status", status).Error
}

func (r *shortageRepo) DeleteByCheckIDs(ctx context.Context, tx *gorm.DB, checkIDs []uuid.UUID) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(checkIDs) == 0 {
		return 0, nil
	}
	res := t.WithContext(ctx).Where("check_id IN ?", checkIDs).Delete(&types.IngredientShortage{})
	return res.RowsAffected, res.Error
}
