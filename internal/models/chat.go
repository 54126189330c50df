package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn is one (user message, assistant reply) exchange on a product page.
// Turns are append-only; the auto-increment ID fixes the display order.
type ChatTurn struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID        uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"uuid"`
	ProductSlug string    `gorm:"not null;index" json:"product_slug"`
	UserText    string    `gorm:"not null" json:"user_text"`
	AIText      string    `gorm:"not null" json:"ai_text"`
	ModelTag    string    `json:"model_tag"`
	CreatedAt   time.Time `json:"created_at"`
}
