package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/ovenline/bakehouse-backend/internal/http/handlers"
	httpMW "github.com/ovenline/bakehouse-backend/internal/http/middleware"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler         *httpH.HealthHandler
	AuthHandler           *httpH.AuthHandler
	UserHandler           *httpH.UserHandler
	IngredientHandler     *httpH.IngredientHandler
	RecipeHandler         *httpH.RecipeHandler
	ScheduleHandler       *httpH.ScheduleHandler
	StockHandler          *httpH.StockHandler
	InventoryCheckHandler *httpH.InventoryCheckHandler
	NotificationHandler   *httpH.NotificationHandler
	ChatHandler           *httpH.ChatHandler
	RealtimeHandler       *httpH.RealtimeHandler

	ExtraCORSOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	httpH.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.ExtraCORSOrigins...))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// User (Me)
		if cfg.UserHandler != nil {
			protected.GET("/user", cfg.UserHandler.GetMe)
		}

		// Ingredients
		if cfg.IngredientHandler != nil {
			protected.GET("/ingredients", cfg.IngredientHandler.List)
			protected.POST("/ingredients", cfg.IngredientHandler.Create)
			protected.GET("/ingredients/:id", cfg.IngredientHandler.Get)
		}

		// Recipes
		if cfg.RecipeHandler != nil {
			protected.GET("/recipes", cfg.RecipeHandler.List)
			protected.POST("/recipes", cfg.RecipeHandler.Create)
			protected.GET("/recipes/:id", cfg.RecipeHandler.Get)
			protected.PUT("/recipes/:id", cfg.RecipeHandler.Update)
			protected.DELETE("/recipes/:id", cfg.RecipeHandler.Delete)
		}

		// Production schedules
		if cfg.ScheduleHandler != nil {
			protected.GET("/schedules", cfg.ScheduleHandler.List)
			protected.POST("/schedules", cfg.ScheduleHandler.Create)
			protected.GET("/schedules/:id", cfg.ScheduleHandler.Get)
			protected.PUT("/schedules/:id", cfg.ScheduleHandler.Update)
			protected.DELETE("/schedules/:id", cfg.ScheduleHandler.Delete)
		}

		// Stock
		if cfg.StockHandler != nil {
			protected.GET("/stock", cfg.StockHandler.List)
			protected.PUT("/stock/:ingredientId", cfg.StockHandler.Upsert)
		}

		// Inventory checks
		if cfg.InventoryCheckHandler != nil {
			protected.POST("/inventory-check/run", cfg.InventoryCheckHandler.Run)
			protected.GET("/inventory-check/:scheduleId", cfg.InventoryCheckHandler.GetLatest)
			protected.DELETE("/inventory-check/:scheduleId/delete", cfg.InventoryCheckHandler.DeleteForSchedule)
			protected.POST("/inventory-check/shortages/:id/resolve", cfg.InventoryCheckHandler.ResolveShortage)
		}

		// Notifications
		if cfg.NotificationHandler != nil {
			protected.GET("/notifications", cfg.NotificationHandler.List)
			protected.POST("/notifications/:id/read", cfg.NotificationHandler.MarkRead)
		}

		// Chat
		if cfg.ChatHandler != nil {
			protected.GET("/chat/:channel/messages", cfg.ChatHandler.History)
			protected.POST("/chat/:channel/messages", cfg.ChatHandler.Post)
		}

		// Realtime (SSE)
		if cfg.RealtimeHandler != nil {
			protected.GET("/events/stream", cfg.RealtimeHandler.Stream)
		}
	}

	return r
}
