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

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (ch *ChatHandler) Post(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondMapped(c, apperr.Unauthorized("no authenticated user"))
		return
	}
	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMapped(c, apperr.InvalidInput("invalid request body"))
		return
	}
	msg, err := ch.chatService.Post(c.Request.Context(), c.Param("channel"), rd.UserID, req.Body)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"success": true, "message": msg})
}

func (ch *ChatHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	msgs, err := ch.chatService.History(c.Request.Context(), c.Param("channel"), limit)
	if err != nil {
		response.RespondMapped(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "messages": msgs})
}
