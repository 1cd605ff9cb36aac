package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	messagingrepos "github.com/ovenline/bakehouse-backend/internal/data/repos/messaging"
	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/platform/apperr"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
	"github.com/ovenline/bakehouse-backend/internal/realtime"
)

const maxChatBodyLen = 4000

type ChatService interface {
	Post(ctx context.Context, channel string, userID uuid.UUID, body string) (*types.ChatMessage, error)
	History(ctx context.Context, channel string, limit int) ([]*types.ChatMessage, error)
}

type chatService struct {
	db     *gorm.DB
	log    *logger.Logger
	repo   messagingrepos.ChatMessageRepo
	events realtime.Publisher
}

func NewChatService(
	db *gorm.DB,
	baseLog *logger.Logger,
	repo messagingrepos.ChatMessageRepo,
	events realtime.Publisher,
) ChatService {
	return &chatService{
		db:     db,
		log:    baseLog.With("service", "ChatService"),
		repo:   repo,
		events: events,
	}
}

func (cs *chatService) Post(ctx context.Context, channel string, userID uuid.UUID, body string) (*types.ChatMessage, error) {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return nil, apperr.InvalidInput("chat channel is required")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperr.InvalidInput("chat message body is empty")
	}
	if len(body) > maxChatBodyLen {
		return nil, apperr.InvalidInput("chat message body is too long")
	}
	msg := &types.ChatMessage{
		ID:      uuid.New(),
		Channel: channel,
		UserID:  userID,
		Body:    body,
	}
	if err := cs.repo.Create(ctx, nil, msg); err != nil {
		return nil, apperr.MapDBError("create chat message", err)
	}
	if cs.events != nil {
		if pubErr := cs.events.Publish(ctx, realtime.Message{
			Channel: channel,
			Event:   realtime.EventChatMessagePosted,
			Data:    msg,
		}); pubErr != nil {
			cs.log.Warn("publish chat message", "channel", channel, "error", pubErr)
		}
	}
	return msg, nil
}

func (cs *chatService) History(ctx context.Context, channel string, limit int) ([]*types.ChatMessage, error) {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return nil, apperr.InvalidInput("chat channel is required")
	}
	msgs, err := cs.repo.ListByChannel(ctx, nil, channel, limit)
	if err != nil {
		return nil, apperr.MapDBError("list chat messages", err)
	}
	return msgs, nil
}
