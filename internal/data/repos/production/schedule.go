package production

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
)

type ScheduleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.ProductionSchedule) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ProductionSchedule, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.ProductionSchedule, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.ProductionSchedule) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type scheduleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScheduleRepo(db *gorm.DB, baseLog *logger.Logger) ScheduleRepo {
	return &scheduleRepo{db: db, log: baseLog.With("repo", "ScheduleRepo")}
}

func (r *scheduleRepo) Create(ctx context.Context, tx *gorm.DB, row *types.ProductionSchedule) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *scheduleRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ProductionSchedule, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.ProductionSchedule
	if err := t.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *scheduleRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.ProductionSchedule, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.ProductionSchedule
	if err := t.WithContext(ctx).Order("week_start DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *scheduleRepo) Update(ctx context.Context, tx *gorm.DB, row *types.ProductionSchedule) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Save(row).Error
}

func (r *scheduleRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Where("id = ?", id).Delete(&types.ProductionSchedule{}).Error
}
