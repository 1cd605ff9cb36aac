package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/catalog"
	productionrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/production"
	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
)

type ScheduleService interface {
	Create(ctx context.Context, weekStart time.Time, entries []types.ScheduleEntry) (*types.ProductionSchedule, error)
	Get(ctx context.Context, id uuid.UUID) (*types.ProductionSchedule, error)
	List(ctx context.Context) ([]*types.ProductionSchedule, error)
	Update(ctx context.Context, id uuid.UUID, weekStart *time.Time, entries []types.ScheduleEntry) (*types.ProductionSchedule, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type scheduleService struct {
	db           *gorm.DB
	log          *logger.Logger
	scheduleRepo productionrepos.ScheduleRepo
	recipeRepo   catalogrepos.RecipeRepo
	checkRepo    productionrepos.CheckRepo
	shortageRepo productionrepos.ShortageRepo
}

func NewScheduleService(
	db *gorm.DB,
	baseLog *logger.Logger,
	scheduleRepo productionrepos.ScheduleRepo,
	recipeRepo catalogrepos.RecipeRepo,
	checkRepo productionrepos.CheckRepo,
	shortageRepo productionrepos.ShortageRepo,
) ScheduleService {
	return &scheduleService{
		db:           db,
		log:          baseLog.With("service", "ScheduleService"),
		scheduleRepo: scheduleRepo,
		recipeRepo:   recipeRepo,
		checkRepo:    checkRepo,
		shortageRepo: shortageRepo,
	}
}

func (ss *scheduleService) Create(ctx context.Context, weekStart time.Time, entries []types.ScheduleEntry) (*types.ProductionSchedule, error) {
	if weekStart.IsZero() {
		return nil, apperr.InvalidInput("week_start is required")
	}
	if err := ss.validateEntries(ctx, entries); err != nil {
		return nil, err
	}
	schedule := &types.ProductionSchedule{ID: uuid.New(), WeekStart: weekStart}
	if err := schedule.SetEntries(entries); err != nil {
		return nil, apperr.InvalidInput(fmt.Sprintf("encode schedule entries: %v", err))
	}
	if err := ss.scheduleRepo.Create(ctx, nil, schedule); err != nil {
		return nil, apperr.MapDBError("create schedule", err)
	}
	return schedule, nil
}

func (ss *scheduleService) Get(ctx context.Context, id uuid.UUID) (*types.ProductionSchedule, error) {
	schedule, err := ss.scheduleRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apperr.MapDBError("load schedule", err)
	}
	return schedule, nil
}

func (ss *scheduleService) List(ctx context.Context) ([]*types.ProductionSchedule, error) {
	schedules, err := ss.scheduleRepo.List(ctx, nil)
	if err != nil {
		return nil, apperr.MapDBError("list schedules", err)
	}
	return schedules, nil
}

func (ss *scheduleService) Update(ctx context.Context, id uuid.UUID, weekStart *time.Time, entries []types.ScheduleEntry) (*types.ProductionSchedule, error) {
	schedule, err := ss.scheduleRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apperr.MapDBError("load schedule", err)
	}
	if weekStart != nil && !weekStart.IsZero() {
		schedule.WeekStart = *weekStart
	}
	if entries != nil {
		if err := ss.validateEntries(ctx, entries); err != nil {
			return nil, err
		}
		if err := schedule.SetEntries(entries); err != nil {
			return nil, apperr.InvalidInput(fmt.Sprintf("encode schedule entries: %v", err))
		}
	}
	if err := ss.scheduleRepo.Update(ctx, nil, schedule); err != nil {
		return nil, apperr.MapDBError("update schedule", err)
	}
	return schedule, nil
}

// Delete removes a schedule together with its inventory checks and their
// shortages. Shortages go first, then checks, then the schedule row itself,
// all inside one transaction.
func (ss *scheduleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := ss.scheduleRepo.GetByID(ctx, nil, id); err != nil {
		return apperr.MapDBError("load schedule", err)
	}
	return ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		checks, err := ss.checkRepo.ListByScheduleID(ctx, tx, id)
		if err != nil {
			return apperr.MapDBError("list checks", err)
		}
		checkIDs := make([]uuid.UUID, 0, len(checks))
		for _, c := range checks {
			checkIDs = append(checkIDs, c.ID)
		}
		if _, err := ss.shortageRepo.DeleteByCheckIDs(ctx, tx, checkIDs); err != nil {
			return apperr.MapDBError("delete shortages", err)
		}
		if _, err := ss.checkRepo.DeleteByScheduleID(ctx, tx, id); err != nil {
			return apperr.MapDBError("delete checks", err)
		}
		if err := ss.scheduleRepo.Delete(ctx, tx, id); err != nil {
			return apperr.MapDBError("delete schedule", err)
		}
		return nil
	})
}

func (ss *scheduleService) validateEntries(ctx context.Context, entries []types.ScheduleEntry) error {
	ids := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		if entry.RecipeID == uuid.Nil {
			return apperr.InvalidInput("recipe id is required on every schedule entry")
		}
		if entry.BatchCount < 0 {
			return apperr.InvalidInput(fmt.Sprintf("recipe %s has a negative batch count", entry.RecipeID))
		}
		ids = append(ids, entry.RecipeID)
	}
	found, err := ss.recipeRepo.GetByIDs(ctx, nil, ids)
	if err != nil {
		return apperr.MapDBError("validate recipes", err)
	}
	known := make(map[uuid.UUID]bool, len(found))
	for _, r := range found {
		known[r.ID] = true
	}
	for _, entry := range entries {
		if !known[entry.RecipeID] {
			return apperr.InvalidInput(fmt.Sprintf("unknown recipe %s", entry.RecipeID))
		}
	}
	return nil
}
