package repo

import (
	"onestop-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepo struct {
	db *gorm.DB
}

type ChatRepoInterface interface {
	AppendTurn(turn *models.ChatTurn) error
	RecentTurns(slug string, limit int) ([]models.ChatTurn, error)
}

func NewChatRepository(db *gorm.DB) ChatRepoInterface {
	return &ChatRepo{db: db}
}

// AppendTurn inserts one immutable chat turn. Write order per slug follows
// the auto-increment ID.
func (r *ChatRepo) AppendTurn(turn *models.ChatTurn) error {
	if turn.UUID == uuid.Nil {
		turn.UUID = uuid.New()
	}
	return r.db.Create(turn).Error
}

// RecentTurns returns at most limit of the newest turns for a slug,
// oldest-first for display.
func (r *ChatRepo) RecentTurns(slug string, limit int) ([]models.ChatTurn, error) {
	// sane default + cap
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var turns []models.ChatTurn
	err := r.db.Model(&models.ChatTurn{}).
		Where("product_slug = ?", slug).
		Order("id desc").
		Limit(limit).
		Find(&turns).Error
	if err != nil {
		return nil, err
	}

	// query reads newest-first so the limit keeps the most recent turns;
	// reverse back to chronological order
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}
