package db

import (
	"gorm.io/gorm"

	types "github.com/ovenline/bakehouse-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// Identity + auth
		&types.User{},
		&types.UserToken{},

		// Catalog
		&types.Ingredient{},
		&types.Recipe{},

		// Production
		&types.ProductionSchedule{},
		&types.StockLevel{},
		&types.InventoryCheck{},
		&types.IngredientShortage{},

		// Messaging
		&types.Notification{},
		&types.ChatMessage{},
	)
}
