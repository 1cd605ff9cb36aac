package messaging

import (
	"context"

	"gorm.io/gorm"

	types "github.com/ovenline/bakehouse-backend/internal/domain"
	"github.com/ovenline/bakehouse-backend/internal/platform/logger"
)

type ChatMessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.ChatMessage) error
	ListByChannel(ctx context.Context, tx *gorm.DB, channel string, limit int) ([]*types.ChatMessage, error)
}

type chatMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatMessageRepo(db *gorm.DB, baseLog *logger.Logger) ChatMessageRepo {
	return &chatMessageRepo{db: db, log: baseLog.With("repo", "ChatMessageRepo")}
}

func (r *chatMessageRepo) Create(ctx context.Context, tx *gorm.DB, row *types.ChatMessage) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *chatMessageRepo) ListByChannel(ctx context.Context, tx *gorm.DB, channel string, limit int) ([]*types.ChatMessage, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if limit <= 0 {
		limit = 100
	}
	var out []*types.ChatMessage
	if err := t.WithContext(ctx).
		Where("channel = ?", channel).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
