package repository

import (
	"cityhunt/internal/models"
	"cityhunt/internal/storage"
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindRecentByTeam(teamID uint, limit int) ([]models.Message, error)
	DeleteByTeam(teamID uint) error
}

type messageRepository struct {
	db *storage.SQLiteDB
}

func NewMessageRepository(db *storage.SQLiteDB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// FindRecentByTeam returns up to limit of the newest messages for a team in
// ascending id order, both directions interleaved.
func (r *messageRepository) FindRecentByTeam(teamID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("team_id = ?", teamID).
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	// Fetched newest-first to apply the cap; flip back to chat order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *messageRepository) DeleteByTeam(teamID uint) error {
	return r.db.Where("team_id = ?", teamID).Delete(&models.Message{}).Error
}
