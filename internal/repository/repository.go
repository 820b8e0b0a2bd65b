package repository

import (
	"cityhunt/internal/models"
	"cityhunt/internal/storage"

	"gorm.io/gorm"
)

type Repositories struct {
	Team       TeamRepository
	Mission    MissionRepository
	Submission SubmissionRepository
	Message    MessageRepository
	Broadcast  BroadcastRepository
	GameState  GameStateRepository

	db *storage.SQLiteDB
}

func NewRepositories(db *storage.SQLiteDB) *Repositories {
	return &Repositories{
		Team:       NewTeamRepository(db),
		Mission:    NewMissionRepository(db),
		Submission: NewSubmissionRepository(db),
		Message:    NewMessageRepository(db),
		Broadcast:  NewBroadcastRepository(db),
		GameState:  NewGameStateRepository(db),
		db:         db,
	}
}

// ResetRound wipes every round-scoped table in one transaction. The mission
// catalog is deliberately left alone.
func (r *Repositories) ResetRound() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []interface{}{
			&models.Submission{},
			&models.Message{},
			&models.Broadcast{},
			&models.BroadcastReceipt{},
			&models.GameState{},
			&models.Team{},
		} {
			if err := wipe.Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
