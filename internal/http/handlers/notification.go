package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ovenline/bakehouse-backend/internal/http/response"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
	"github.com/ovenline/bakehouse-backend/internal/platform/requestdata"
	"github.com/ovenline/bakehouse-backend/internal/services"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (nh *NotificationHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondMapped(c, apperr.Unauthorized("no authenticated user"))
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	rows, err := nh.notificationService.ListForUser(c.Request.Context(), rd.UserID, limit)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "notifications": rows})
}

func (nh *NotificationHandler) MarkRead(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondMapped(c, apperr.Unauthorized("no authenticated user"))
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid notification id"))
		return
	}
	if err := nh.notificationService.MarkRead(c.Request.Context(), id, rd.UserID); err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}
