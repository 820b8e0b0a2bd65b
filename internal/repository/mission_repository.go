package repository

import (
	"cityhunt/internal/models"
	"cityhunt/internal/storage"
)

type MissionRepository interface {
	Count() (int64, error)
	CreateAll(missions []models.Mission) error
	FindAll() ([]models.Mission, error)
}

type missionRepository struct {
	db *storage.SQLiteDB
}

func NewMissionRepository(db *storage.SQLiteDB) MissionRepository {
	return &missionRepository{db: db}
}

func (r *missionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Mission{}).Count(&count).Error
	return count, err
}

func (r *missionRepository) CreateAll(missions []models.Mission) error {
	rows := make([]models.Mission, len(missions))
	copy(rows, missions)
	return r.db.Create(&rows).Error
}

func (r *missionRepository) FindAll() ([]models.Mission, error) {
	var missions []models.Mission
	err := r.db.Order("number ASC").Find(&missions).Error
	return missions, err
}
