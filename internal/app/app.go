package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ovenline/bakehouse-backend/internal/data/db"
	apphttp "github.com/ovenline/bakehouse-backend/internal/http"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
	"github.com/ovenline/bakehouse-backend/internal/realtime"
	"github.com/ovenline/bakehouse-backend/internal/realtime/bus"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	Hub      *realtime.Hub

	bus    bus.Bus
	cancel context.CancelFunc
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	hub := realtime.NewHub(log)

	// With redis enabled, events fan out across instances; the forwarder
	// feeds each instance's hub. Without it, the hub alone serves the
	// single-instance case.
	var events realtime.Publisher = hub
	var redisBus bus.Bus
	if cfg.RedisEnabled {
		redisBus, err = bus.NewRedisBus(log)
		if err != nil {
			log.Warn("redis bus init failed, falling back to in-process hub", "error", err)
		} else {
			events = redisBus
		}
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet, events)
	handlerset := wireHandlers(log, serviceset, hub)
	authMW := wireMiddleware(log, serviceset)

	router := apphttp.NewRouter(apphttp.RouterConfig{
		Log:                   log,
		AuthMiddleware:        authMW,
		HealthHandler:         handlerset.Health,
		AuthHandler:           handlerset.Auth,
		UserHandler:           handlerset.User,
		IngredientHandler:     handlerset.Ingredient,
		RecipeHandler:         handlerset.Recipe,
		ScheduleHandler:       handlerset.Schedule,
		StockHandler:          handlerset.Stock,
		InventoryCheckHandler: handlerset.InventoryCheck,
		NotificationHandler:   handlerset.Notification,
		ChatHandler:           handlerset.Chat,
		RealtimeHandler:       handlerset.Realtime,
		ExtraCORSOrigins:      cfg.CORSOrigins,
	})

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
		Hub:      hub,
		bus:      redisBus,
	}, nil
}

// Start launches the background pieces: the redis forwarder that feeds
// remote events into the local hub.
func (a *App) Start() {
	if a == nil || a.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	if a.bus != nil {
		if err := a.bus.StartForwarder(ctx, a.Hub.Broadcast); err != nil {
			a.Log.Warn("redis forwarder start failed", "error", err)
		}
	}

	go a.sweepExpiredTokens(ctx)
}

// sweepExpiredTokens removes refresh tokens past their expiry once a day.
func (a *App) sweepExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := a.Repos.UserToken.DeleteExpired(ctx, nil, time.Now())
			if err != nil {
				a.Log.Warn("expired token sweep failed", "error", err)
				continue
			}
			if count > 0 {
				a.Log.Info("expired tokens removed", "count", count)
			}
		}
	}
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.bus != nil {
		if err := a.bus.Close(); err != nil {
			a.Log.Warn("redis bus close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
