package production

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
)

type CheckRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.InventoryCheck) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.InventoryCheck, error)
	// GetLatestByScheduleID returns the newest check for the schedule or
	// gorm.ErrRecordNotFound when none exists.
	GetLatestByScheduleID(ctx context.Context, tx *gorm.DB, scheduleID uuid.UUID) (*types.InventoryCheck, error)
	ListByScheduleID(ctx context.Context, tx *gorm.DB, scheduleID uuid.UUID) ([]*types.InventoryCheck, error)
	DeleteByScheduleID(ctx context.Context, tx *gorm.DB, scheduleID uuid.UUID) (int64, error)
}

type checkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCheckRepo(db *gorm.DB, baseLog *logger.Logger) CheckRepo {
	return &checkRepo{db: db, log: baseLog.With("repo", "CheckRepo")}
}

func (r *checkRepo) Create(ctx context.Context, tx *gorm.DB, row *types.InventoryCheck) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *checkRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.InventoryCheck, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.InventoryCheck
	if err := t.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *checkRepo) GetLatestByScheduleID(ctx context.Context, tx *gorm.DB, scheduleID uuid.UUID) (*types.InventoryCheck, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.InventoryCheck
	if err := t.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("created_at DESC").
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *checkRepo) ListByScheduleID(ctx context.Context, tx *gorm.DB, scheduleID uuid.UUID) ([]*types.InventoryCheck, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.InventoryCheck
	if err := t.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *checkRepo) DeleteByScheduleID(ctx context.Context, tx *gorm.DB, scheduleID uuid.UUID) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	res := t.WithContext(ctx).Where("schedule_id = ?", scheduleID).Delete(&types.InventoryCheck{})
	return res.RowsAffected, res.Error
}
