package messaging

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Channel string    `gorm:"index;not null" json:"channel"`
	UserID  uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Body    string    `gorm:"not null" json:"body"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_messages" }
