package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	repos "github.com/ovenline/bakehouse-backend/internal/data/repos/production"
	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/domain/catalog"
	"github.com/ovenline/bakehouse-backend/internal/inventory"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
	"github.com/ovenline/bakehouse-backend/internal/realtime"
)

// ShortageView decorates a persisted shortage with display-ready quantities.
type ShortageView struct {
	*types.IngredientShortage
	RequiredDisplay  inventory.DisplayQuantity `json:"required_display"`
	AvailableDisplay inventory.DisplayQuantity `json:"available_display"`
	DeficitDisplay   inventory.DisplayQuantity `json:"deficit_display"`
}

type InventoryCheckResult struct {
	Check     *types.InventoryCheck `json:"check"`
	Shortages []*ShortageView       `json:"shortages"`
}

type DeleteSummary struct {
	ChecksDeleted    int64 `json:"checks"`
	ShortagesDeleted int64 `json:"shortages"`
}

type RecipeLookup interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recipe, error)
}

type InventoryCheckService interface {
	// Run executes one check pass for a schedule: explode its recipes into
	// ingredient requirements, compare against current stock and persist the
	// resulting check plus shortages atomically. Runs never retry and never
	// cache; each call reflects stock at call time.
	Run(ctx context.Context, scheduleID uuid.UUID, userID *uuid.UUID) (*InventoryCheckResult, error)
	GetLatest(ctx context.Context, scheduleID uuid.UUID) (*InventoryCheckResult, error)
	DeleteForSchedule(ctx context.Context, scheduleID uuid.UUID) (*DeleteSummary, error)
	ResolveShortage(ctx context.Context, shortageID uuid.UUID) (*types.IngredientShortage, error)
}

type inventoryCheckService struct {
	db           *gorm.DB
	log          *logger.Logger
	scheduleRepo repos.ScheduleRepo
	recipeRepo   RecipeLookup
	stockRepo    repos.StockRepo
	checkRepo    repos.CheckRepo
	shortageRepo repos.ShortageRepo
	events       realtime.Publisher
}

func NewInventoryCheckService(
	db *gorm.DB,
	baseLog *logger.Logger,
	scheduleRepo repos.ScheduleRepo,
	recipeRepo RecipeLookup,
	stockRepo repos.StockRepo,
	checkRepo repos.CheckRepo,
	shortageRepo repos.ShortageRepo,
	events realtime.Publisher,
) InventoryCheckService {
	return &inventoryCheckService{
		db:           db,
		log:          baseLog.With("service", "InventoryCheckService"),
		scheduleRepo: scheduleRepo,
		recipeRepo:   recipeRepo,
		stockRepo:    stockRepo,
		checkRepo:    checkRepo,
		shortageRepo: shortageRepo,
		events:       events,
	}
}

func (s *inventoryCheckService) Run(ctx context.Context, scheduleID uuid.UUID, userID *uuid.UUID) (*InventoryCheckResult, error) {
	if scheduleID == uuid.Nil {
		return nil, apperr.InvalidInput("scheduleId is required")
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, nil, scheduleID)
	if err != nil {
		return nil, apperr.MapDBError("load schedule", err)
	}
	entries, err := schedule.Entries()
	if err != nil {
		return nil, apperr.InvalidInput(fmt.Sprintf("schedule %s has malformed schedule data: %v", scheduleID, err))
	}

	recipes, err := s.loadRecipes(ctx, entries)
	if err != nil {
		return nil, err
	}

	var reqs []inventory.Requirement
	for _, entry := range entries {
		expanded, err := inventory.Expand(recipes[entry.RecipeID], entry.BatchCount)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, expanded...)
	}
	aggregated, err := inventory.Aggregate(reqs)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.loadSnapshot(ctx, aggregated)
	if err != nil {
		return nil, err
	}
	drafts := inventory.Compare(aggregated, snapshot)

	check := &types.InventoryCheck{
		ID:            uuid.New(),
		ScheduleID:    scheduleID,
		UserID:        userID,
		Status:        types.CheckStatusCompleted,
		ShortageCount: len(drafts),
		CreatedAt:     time.Now().UTC(),
	}
	shortages := make([]*types.IngredientShortage, 0, len(drafts))
	for i, d := range drafts {
		shortages = append(shortages, &types.IngredientShortage{
			ID:                uuid.New(),
			CheckID:           check.ID,
			IngredientID:      d.IngredientID,
			RequiredQuantity:  d.RequiredQuantity,
			AvailableQuantity: d.AvailableQuantity,
			Deficit:           d.Deficit,
			Unit:              d.Unit,
			ResolutionStatus:  types.ResolutionPending,
			Position:          i,
		})
	}

	// The check and its shortages commit together or not at all.
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkRepo.Create(ctx, tx, check); err != nil {
			return err
		}
		return s.shortageRepo.Create(ctx, tx, shortages)
	}); err != nil {
		s.log.Error("inventory check write failed", "error", err, "schedule_id", scheduleID)
		return nil, apperr.MapDBError("persist inventory check", err)
	}

	s.log.Info("inventory check completed",
		"schedule_id", scheduleID, "check_id", check.ID, "shortages", len(shortages))

	if s.events != nil {
		if pubErr := s.events.Publish(ctx, realtime.Message{
			Channel: scheduleID.String(),
			Event:   realtime.EventInventoryCheckCompleted,
			Data:    map[string]any{"check_id": check.ID, "shortage_count": len(shortages)},
		}); pubErr != nil {
			s.log.Warn("inventory check event publish failed", "error", pubErr)
		}
	}

	return &InventoryCheckResult{Check: check, Shortages: viewShortages(shortages)}, nil
}

// loadRecipes fetches every distinct recipe referenced by the entries. The
// loads are read-only and order-independent, so they run concurrently.
func (s *inventoryCheckService) loadRecipes(ctx context.Context, entries []types.ScheduleEntry) (map[uuid.UUID]*catalog.Recipe, error) {
	ids := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]bool, len(entries))
	for _, entry := range entries {
		if entry.RecipeID == uuid.Nil {
			return nil, apperr.InvalidInput("schedule entry has an empty recipe id")
		}
		if !seen[entry.RecipeID] {
			seen[entry.RecipeID] = true
			ids = append(ids, entry.RecipeID)
		}
	}

	loaded := make([]*types.Recipe, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			recipe, err := s.recipeRepo.GetByID(gctx, nil, id)
			if err != nil {
				return apperr.MapDBError(fmt.Sprintf("load recipe %s", id), err)
			}
			loaded[i] = recipe
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]*catalog.Recipe, len(loaded))
	for _, recipe := range loaded {
		out[recipe.ID] = recipe
	}
	return out, nil
}

func (s *inventoryCheckService) loadSnapshot(ctx context.Context, reqs []inventory.Requirement) (inventory.StockSnapshot, error) {
	ids := make([]uuid.UUID, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.IngredientID)
	}
	levels, err := s.stockRepo.GetByIngredientIDs(ctx, nil, ids)
	if err != nil {
		return nil, apperr.MapDBError("load stock snapshot", err)
	}
	snapshot := make(inventory.StockSnapshot, len(levels))
	for _, level := range levels {
		snapshot[level.IngredientID] = inventory.StockEntry{Quantity: level.Quantity, Unit: level.Unit}
	}
	return snapshot, nil
}

func (s *inventoryCheckService) GetLatest(ctx context.Context, scheduleID uuid.UUID) (*InventoryCheckResult, error) {
	if scheduleID == uuid.Nil {
		return nil, apperr.InvalidInput("scheduleId is required")
	}
	check, err := s.checkRepo.GetLatestByScheduleID(ctx, nil, scheduleID)
	if err != nil {
		return nil, apperr.MapDBError("load latest check", err)
	}
	shortages, err := s.shortageRepo.GetByCheckID(ctx, nil, check.ID)
	if err != nil {
		return nil, apperr.MapDBError("load shortages", err)
	}
	return &InventoryCheckResult{Check: check, Shortages: viewShortages(shortages)}, nil
}

func (s *inventoryCheckService) DeleteForSchedule(ctx context.Context, scheduleID uuid.UUID) (*DeleteSummary, error) {
	if scheduleID == uuid.Nil {
		return nil, apperr.InvalidInput("scheduleId is required")
	}
	summary := &DeleteSummary{}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		checks, err := s.checkRepo.ListByScheduleID(ctx, tx, scheduleID)
		if err != nil {
			return err
		}
		checkIDs := make([]uuid.UUID, 0, len(checks))
		for _, c := range checks {
			checkIDs = append(checkIDs, c.ID)
		}
		// Shortages first: they hold the foreign key onto checks.
		shortagesDeleted, err := s.shortageRepo.DeleteByCheckIDs(ctx, tx, checkIDs)
		if err != nil {
			return err
		}
		checksDeleted, err := s.checkRepo.DeleteByScheduleID(ctx, tx, scheduleID)
		if err != nil {
			return err
		}
		summary.ShortagesDeleted = shortagesDeleted
		summary.ChecksDeleted = checksDeleted
		return nil
	}); err != nil {
		return nil, apperr.MapDBError("delete checks for schedule", err)
	}
	return summary, nil
}

func (s *inventoryCheckService) ResolveShortage(ctx context.Context, shortageID uuid.UUID) (*types.IngredientShortage, error) {
	if shortageID == uuid.Nil {
		return nil, apperr.InvalidInput("shortage id is required")
	}
	shortage, err := s.shortageRepo.GetByID(ctx, nil, shortageID)
	if err != nil {
		return nil, apperr.MapDBError("load shortage", err)
	}
	if shortage.ResolutionStatus == types.ResolutionResolved {
		return shortage, nil
	}
	if err := s.shortageRepo.UpdateResolution(ctx, nil, shortageID, types.ResolutionResolved); err != nil {
		return nil, apperr.MapDBError("resolve shortage", err)
	}
	shortage.ResolutionStatus = types.ResolutionResolved

	if s.events != nil {
		if pubErr := s.events.Publish(ctx, realtime.Message{
			Channel: shortage.CheckID.String(),
			Event:   realtime.EventShortageResolved,
			Data:    map[string]any{"shortage_id": shortage.ID},
		}); pubErr != nil {
			s.log.Warn("shortage resolve event publish failed", "error", pubErr)
		}
	}
	return shortage, nil
}

func viewShortages(rows []*types.IngredientShortage) []*ShortageView {
	views := make([]*ShortageView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &ShortageView{
			IngredientShortage: row,
			RequiredDisplay:    inventory.Normalize(&row.RequiredQuantity, row.Unit),
			AvailableDisplay:   inventory.Normalize(&row.AvailableQuantity, row.Unit),
			DeficitDisplay:     inventory.Normalize(&row.Deficit, row.Unit),
		})
	}
	return views
}
