package app

import (
	"gorm.io/gorm"

	authrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/auth"
	catalogrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/catalog"
	messagingrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/messaging"
	productionrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/production"
	userrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/user"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
)

type Repos struct {
	User         userrepos.UserRepo
	UserToken    authrepos.UserTokenRepo
	Ingredient   catalogrepos.IngredientRepo
	Recipe       catalogrepos.RecipeRepo
	Schedule     productionrepos.ScheduleRepo
	Stock        productionrepos.StockRepo
	Check        productionrepos.CheckRepo
	Shortage     productionrepos.ShortageRepo
	Notification messagingrepos.NotificationRepo
	ChatMessage  messagingrepos.ChatMessageRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:         userrepos.NewUserRepo(db, log),
		UserToken:    authrepos.NewUserTokenRepo(db, log),
		Ingredient:   catalogrepos.NewIngredientRepo(db, log),
		Recipe:       catalogrepos.NewRecipeRepo(db, log),
		Schedule:     productionrepos.NewScheduleRepo(db, log),
		Stock:        productionrepos.NewStockRepo(db, log),
		Check:        productionrepos.NewCheckRepo(db, log),
		Shortage:     productionrepos.NewShortageRepo(db, log),
		Notification: messagingrepos.NewNotificationRepo(db, log),
		ChatMessage:  messagingrepos.NewChatMessageRepo(db, log),
	}
}
