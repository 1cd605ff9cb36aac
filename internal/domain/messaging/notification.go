package messaging

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationKindShortage = "shortage"
	NotificationKindChat     = "chat"
	NotificationKindSystem   = "system"
)

type Notification struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Kind   string    `gorm:"not null" json:"kind"`
	Title  string    `gorm:"not null" json:"title"`
	Body   string    `json:"body"`
	Read   bool      `gorm:"not null;default:false" json:"read"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
