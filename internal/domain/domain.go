package domain

import (
	"github.com/ovenline/bakehouse-backend/internal/domain/auth"
	"github.com/ovenline/bakehouse-backend/internal/domain/catalog"
	"github.com/ovenline/bakehouse-backend/internal/domain/messaging"
	"github.com/ovenline/bakehouse-backend/internal/domain/production"
	"github.com/ovenline/bakehouse-backend/internal/domain/user"
)

type User = user.User
type UserToken = auth.UserToken

type Ingredient = catalog.Ingredient
type Recipe = catalog.Recipe
type RecipeIngredient = catalog.RecipeIngredient

type ProductionSchedule = production.ProductionSchedule
type ScheduleEntry = production.ScheduleEntry
type StockLevel = production.StockLevel
type InventoryCheck = production.InventoryCheck
type IngredientShortage = production.IngredientShortage

type Notification = messaging.Notification
type ChatMessage = messaging.ChatMessage

const (
	RoleBaker   = user.RoleBaker
	RoleManager = user.RoleManager
	RoleAdmin   = user.RoleAdmin

	CheckStatusCompleted = production.CheckStatusCompleted
	ResolutionPending    = production.ResolutionPending
	ResolutionResolved   = production.ResolutionResolved

	NotificationKindShortage = messaging.NotificationKindShortage
	NotificationKindChat     = messaging.NotificationKindChat
	NotificationKindSystem   = messaging.NotificationKindSystem
)
