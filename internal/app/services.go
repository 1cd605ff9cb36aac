package app

import (
	"gorm.io/gorm"

	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
	"github.com/ovenline/bakehouse-backend/internal/realtime"
	"github.com/ovenline/bakehouse-backend/internal/services"
)

type Services struct {
	Auth           services.AuthService
	User           services.UserService
	Ingredient     services.IngredientService
	Recipe         services.RecipeService
	Schedule       services.ScheduleService
	Stock          services.StockService
	InventoryCheck services.InventoryCheckService
	Notification   services.NotificationService
	Chat           services.ChatService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, events realtime.Publisher) Services {
	log.Info("Wiring services...")
	return Services{
		Auth: services.NewAuthService(
			db, log, repos.User, repos.UserToken,
			cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
		),
		User:       services.NewUserService(db, log, repos.User),
		Ingredient: services.NewIngredientService(db, log, repos.Ingredient),
		Recipe:     services.NewRecipeService(db, log, repos.Recipe, repos.Ingredient),
		Schedule:   services.NewScheduleService(db, log, repos.Schedule, repos.Recipe, repos.Check, repos.Shortage),
		Stock:      services.NewStockService(db, log, repos.Stock, repos.Ingredient, events),
		InventoryCheck: services.NewInventoryCheckService(
			db, log, repos.Schedule, repos.Recipe, repos.Stock, repos.Check, repos.Shortage, events,
		),
		Notification: services.NewNotificationService(db, log, repos.Notification, events),
		Chat:         services.NewChatService(db, log, repos.ChatMessage, events),
	}
}
