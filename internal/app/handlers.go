package app

import (
	httpH "github.com/ovenline/bakehouse-backend/internal/http/handlers"
	httpMW "github.com/ovenline/bakehouse-backend/internal/http/middleware"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
	"github.com/ovenline/bakehouse-backend/internal/realtime"
)

type Handlers struct {
	Health         *httpH.HealthHandler
	Auth           *httpH.AuthHandler
	User           *httpH.UserHandler
	Ingredient     *httpH.IngredientHandler
	Recipe         *httpH.RecipeHandler
	Schedule       *httpH.ScheduleHandler
	Stock          *httpH.StockHandler
	InventoryCheck *httpH.InventoryCheckHandler
	Notification   *httpH.NotificationHandler
	Chat           *httpH.ChatHandler
	Realtime       *httpH.RealtimeHandler
}

func wireHandlers(log *logger.Logger, svcs Services, hub *realtime.Hub) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:         httpH.NewHealthHandler(),
		Auth:           httpH.NewAuthHandler(svcs.Auth),
		User:           httpH.NewUserHandler(svcs.User),
		Ingredient:     httpH.NewIngredientHandler(svcs.Ingredient),
		Recipe:         httpH.NewRecipeHandler(svcs.Recipe),
		Schedule:       httpH.NewScheduleHandler(svcs.Schedule),
		Stock:          httpH.NewStockHandler(svcs.Stock),
		InventoryCheck: httpH.NewInventoryCheckHandler(svcs.InventoryCheck, svcs.Notification),
		Notification:   httpH.NewNotificationHandler(svcs.Notification),
		Chat:           httpH.NewChatHandler(svcs.Chat),
		Realtime:       httpH.NewRealtimeHandler(log, hub),
	}
}

func wireMiddleware(log *logger.Logger, svcs Services) *httpMW.AuthMiddleware {
	return httpMW.NewAuthMiddleware(log, svcs.Auth)
}
