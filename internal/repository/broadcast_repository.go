package repository

import (
	"cityhunt/internal/models"
	"cityhunt/internal/storage"

	"gorm.io/gorm/clause"
)

type BroadcastRepository interface {
	Create(broadcast *models.Broadcast) error
	FindPendingForTeam(teamID uint) ([]models.Broadcast, error)
	Acknowledge(teamID, broadcastID uint) error
}

type broadcastRepository struct {
	db *storage.SQLiteDB
}

func NewBroadcastRepository(db *storage.SQLiteDB) BroadcastRepository {
	return &broadcastRepository{db: db}
}

func (r *broadcastRepository) Create(broadcast *models.Broadcast) error {
	return r.db.Create(broadcast).Error
}

// FindPendingForTeam lists broadcasts the team has not acknowledged yet,
// oldest first so announcements arrive in the order they were issued.
func (r *broadcastRepository) FindPendingForTeam(teamID uint) ([]models.Broadcast, error) {
	var broadcasts []models.Broadcast
	err := r.db.Model(&models.Broadcast{}).
		Joins("LEFT JOIN broadcast_receipts r ON r.broadcast_id = broadcasts.id AND r.team_id = ?", teamID).
		Where("r.broadcast_id IS NULL").
		Order("broadcasts.created_at ASC, broadcasts.id ASC").
		Find(&broadcasts).Error
	return broadcasts, err
}

// Acknowledge records the receipt; repeating the ack is a no-op thanks to the
// composite primary key plus insert-or-ignore.
func (r *broadcastRepository) Acknowledge(teamID, broadcastID uint) error {
	receipt := models.BroadcastReceipt{TeamID: teamID, BroadcastID: broadcastID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&receipt).Error
}
