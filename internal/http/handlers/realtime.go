package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
	"github.com/ovenline/bakehouse-backend/internal/platform/requestdata"
	"github.com/ovenline/bakehouse-backend/internal/realtime"
)

type RealtimeHandler struct {
	log *logger.Logger
	hub *realtime.Hub
}

func NewRealtimeHandler(log *logger.Logger, hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{log: log.With("handler", "RealtimeHandler"), hub: hub}
}

// Stream serves one SSE connection. Every client is subscribed to its own
// user channel; extra channels come from ?channels=a,b (chat rooms, schedule
// ids, the stock feed).
func (rh *RealtimeHandler) Stream(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": gin.H{"message": "not authenticated", "code": "unauthorized"},
		})
		return
	}

	client := rh.hub.NewClient(rd.UserID)
	rh.hub.Subscribe(client, rd.UserID.String())
	for _, channel := range strings.Split(c.Query("channels"), ",") {
		rh.hub.Subscribe(client, channel)
	}
	defer rh.hub.Remove(client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.Flush()

	rh.log.Info("sse stream open", "user_id", rd.UserID, "client_id", client.ID)
	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-client.Done():
			return
		case msg := <-client.Outbound:
			payload, err := json.Marshal(msg)
			if err != nil {
				rh.log.Warn("sse payload marshal failed", "error", err)
				continue
			}
			if _, err := c.Writer.WriteString("event: " + string(msg.Event) + "\ndata: " + string(payload) + "\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}
