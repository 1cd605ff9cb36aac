package auth

import (
	"time"

	"github.com/google/uuid"
)

// UserToken is a stored refresh token. Access tokens are stateless JWTs and
// never hit the database.
type UserToken struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	RefreshToken string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
	Revoked      bool      `gorm:"not null;default:false" json:"revoked"`

	CreatedAt time.Time `json:"created_at"`
}

func (UserToken) TableName() string { return "user_tokens" }
