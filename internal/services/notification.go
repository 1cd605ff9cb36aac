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

type NotificationService interface {
	Notify(ctx context.Context, userIDs []uuid.UUID, kind, title, body string) ([]*types.Notification, error)
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type notificationService struct {
	db     *gorm.DB
	log    *logger.Logger
	repo   messagingrepos.NotificationRepo
	events realtime.Publisher
}

func NewNotificationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	repo messagingrepos.NotificationRepo,
	events realtime.Publisher,
) NotificationService {
	return &notificationService{
		db:     db,
		log:    baseLog.With("service", "NotificationService"),
		repo:   repo,
		events: events,
	}
}

// Notify fans one notification out to each recipient. All rows are written in
// a single batch; the realtime push per user is best effort.
func (ns *notificationService) Notify(ctx context.Context, userIDs []uuid.UUID, kind, title, body string) ([]*types.Notification, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperr.InvalidInput("notification title is required")
	}
	if kind == "" {
		kind = types.NotificationKindSystem
	}
	rows := make([]*types.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		if userID == uuid.Nil {
			return nil, apperr.InvalidInput("notification recipient id is required")
		}
		rows = append(rows, &types.Notification{
			ID:     uuid.New(),
			UserID: userID,
			Kind:   kind,
			Title:  title,
			Body:   body,
		})
	}
	if len(rows) == 0 {
		return rows, nil
	}
	if err := ns.repo.Create(ctx, nil, rows); err != nil {
		return nil, apperr.MapDBError("create notifications", err)
	}
	if ns.events != nil {
		for _, row := range rows {
			if pubErr := ns.events.Publish(ctx, realtime.Message{
				Channel: row.UserID.String(),
				Event:   realtime.EventNotificationCreated,
				Data:    row,
			}); pubErr != nil {
				ns.log.Warn("publish notification", "user_id", row.UserID, "error", pubErr)
			}
		}
	}
	return rows, nil
}

func (ns *notificationService) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*types.Notification, error) {
	rows, err := ns.repo.ListByUserID(ctx, nil, userID, limit)
	if err != nil {
		return nil, apperr.MapDBError("list notifications", err)
	}
	return rows, nil
}

// MarkRead flips a notification to read. The user id scopes the update so one
// user cannot touch another's notifications.
func (ns *notificationService) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	count, err := ns.repo.MarkRead(ctx, nil, id, userID)
	if err != nil {
		return apperr.MapDBError("mark notification read", err)
	}
	if count == 0 {
		return apperr.NotFound("notification not found")
	}
	return nil
}
