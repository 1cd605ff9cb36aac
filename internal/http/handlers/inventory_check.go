package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/http/response"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
	"github.com/ovenline/bakehouse-backend/internal/platform/requestdata"
	"github.com/ovenline/bakehouse-backend/internal/services"
)

type InventoryCheckHandler struct {
	checkService        services.InventoryCheckService
	notificationService services.NotificationService
}

func NewInventoryCheckHandler(
	checkService services.InventoryCheckService,
	notificationService services.NotificationService,
) *InventoryCheckHandler {
	return &InventoryCheckHandler{
		checkService:        checkService,
		notificationService: notificationService,
	}
}

func (ch *InventoryCheckHandler) Run(c *gin.Context) {
	var req struct {
		ScheduleID uuid.UUID  `json:"scheduleId" binding:"required"`
		UserID     *uuid.UUID `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid request body"))
		return
	}
	userID := req.UserID
	if userID == nil {
		if rd := requestdata.GetRequestData(c.Request.Context()); rd != nil && rd.UserID != uuid.Nil {
			id := rd.UserID
			userID = &id
		}
	}
	result, err := ch.checkService.Run(c.Request.Context(), req.ScheduleID, userID)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	if ch.notificationService != nil && userID != nil && result.Check.ShortageCount > 0 {
		_, _ = ch.notificationService.Notify(
			c.Request.Context(),
			[]uuid.UUID{*userID},
			types.NotificationKindShortage,
			"Ingredient shortages found",
			fmt.Sprintf("Inventory check flagged %d ingredient(s) short for the schedule.", result.Check.ShortageCount),
		)
	}
	response.RespondOK(c, gin.H{"success": true, "result": result})
}

func (ch *InventoryCheckHandler) GetLatest(c *gin.Context) {
	scheduleID, err := uuid.Parse(c.Param("scheduleId"))
	if err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid schedule id"))
		return
	}
	result, err := ch.checkService.GetLatest(c.Request.Context(), scheduleID)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "result": result})
}

func (ch *InventoryCheckHandler) DeleteForSchedule(c *gin.Context) {
	scheduleID, err := uuid.Parse(c.Param("scheduleId"))
	if err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid schedule id"))
		return
	}
	summary, err := ch.checkService.DeleteForSchedule(c.Request.Context(), scheduleID)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success": true,
		"message": "inventory checks deleted",
		"deleted": summary,
	})
}

func (ch *InventoryCheckHandler) ResolveShortage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid shortage id"))
		return
	}
	shortage, err := ch.checkService.ResolveShortage(c.Request.Context(), id)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "shortage": shortage})
}
