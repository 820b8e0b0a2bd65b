package repository

import (
	"errors"
	"time"

	"cityhunt/internal/models"
	"cityhunt/internal/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameStateRepository interface {
	Upsert(startTime time.Time, durationMinutes int) error
	Find() (*models.GameState, error)
	Delete() error
}

type gameStateRepository struct {
	db *storage.SQLiteDB
}

func NewGameStateRepository(db *storage.SQLiteDB) GameStateRepository {
	return &gameStateRepository{db: db}
}

// Upsert writes the single timer row, overwriting any previous round start.
func (r *gameStateRepository) Upsert(startTime time.Time, durationMinutes int) error {
	state := models.GameState{
		ID:              models.GameStateID,
		StartTime:       &startTime,
		DurationMinutes: durationMinutes,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"start_time", "duration_minutes"}),
	}).Create(&state).Error
}

// Find returns nil without error when no timer row exists.
func (r *gameStateRepository) Find() (*models.GameState, error) {
	var state models.GameState
	err := r.db.First(&state, models.GameStateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *gameStateRepository) Delete() error {
	return r.db.Delete(&models.GameState{}, models.GameStateID).Error
}
