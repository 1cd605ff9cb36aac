package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	catalogrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/catalog"
	productionrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/production"
	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/inventory"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
	"github.com/ovenline/bakehouse-backend/internal/realtime"
)

// StockView pairs a raw stock row with its display form, so 1500 GM renders
// as "1.50 KG" without losing the stored precision.
type StockView struct {
	*types.StockLevel
	IngredientName  string `json:"ingredient_name"`
	DisplayQuantity string `json:"display_quantity"`
	DisplayUnit     string `json:"display_unit"`
}

type StockService interface {
	Upsert(ctx context.Context, ingredientID uuid.UUID, quantity decimal.Decimal, unit string) (*StockView, error)
	List(ctx context.Context) ([]*StockView, error)
}

type stockService struct {
	db             *gorm.DB
	log            *logger.Logger
	stockRepo      productionrepos.StockRepo
	ingredientRepo catalogrepos.IngredientRepo
	events         realtime.Publisher
}

func NewStockService(
	db *gorm.DB,
	baseLog *logger.Logger,
	stockRepo productionrepos.StockRepo,
	ingredientRepo catalogrepos.IngredientRepo,
	events realtime.Publisher,
) StockService {
	return &stockService{
		db:             db,
		log:            baseLog.With("service", "StockService"),
		stockRepo:      stockRepo,
		ingredientRepo: ingredientRepo,
		events:         events,
	}
}

func (ss *stockService) Upsert(ctx context.Context, ingredientID uuid.UUID, quantity decimal.Decimal, unit string) (*StockView, error) {
	if ingredientID == uuid.Nil {
		return nil, apperr.InvalidInput("ingredient_id is required")
	}
	if quantity.IsNegative() {
		return nil, apperr.InvalidInput("stock quantity cannot be negative")
	}
	ingredient, err := ss.ingredientRepo.GetByID(ctx, nil, ingredientID)
	if err != nil {
		return nil, apperr.MapDBError("load ingredient", err)
	}
	unit = strings.ToUpper(strings.TrimSpace(unit))
	if unit == "" {
		unit = inventory.DefaultUnit
	}
	row := &types.StockLevel{
		ID:           uuid.New(),
		IngredientID: ingredientID,
		Quantity:     quantity,
		Unit:         unit,
	}
	if err := ss.stockRepo.Upsert(ctx, nil, row); err != nil {
		return nil, apperr.MapDBError("upsert stock", err)
	}

	view := stockView(row, ingredient.Name)
	if ss.events != nil {
		if pubErr := ss.events.Publish(ctx, realtime.Message{
			Channel: realtime.ChannelStock,
			Event:   realtime.EventStockUpdated,
			Data:    view,
		}); pubErr != nil {
			ss.log.Warn("publish stock update", "error", pubErr)
		}
	}
	return view, nil
}

func (ss *stockService) List(ctx context.Context) ([]*StockView, error) {
	rows, err := ss.stockRepo.List(ctx, nil)
	if err != nil {
		return nil, apperr.MapDBError("list stock", err)
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.IngredientID)
	}
	ingredients, err := ss.ingredientRepo.GetByIDs(ctx, nil, ids)
	if err != nil {
		return nil, apperr.MapDBError("load ingredients", err)
	}
	names := make(map[uuid.UUID]string, len(ingredients))
	for _, ing := range ingredients {
		names[ing.ID] = ing.Name
	}
	views := make([]*StockView, 0, len(rows))
	for _, row := range rows {
		views = append(views, stockView(row, names[row.IngredientID]))
	}
	return views, nil
}

func stockView(row *types.StockLevel, ingredientName string) *StockView {
	q := row.Quantity
	display := inventory.Normalize(&q, row.Unit)
	return &StockView{
		StockLevel:      row,
		IngredientName:  ingredientName,
		DisplayQuantity: display.Value,
		DisplayUnit:     display.Unit,
	}
}
