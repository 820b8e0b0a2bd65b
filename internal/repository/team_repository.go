package repository

import (
	"cityhunt/internal/models"
	"cityhunt/internal/storage"

	"gorm.io/gorm/clause"
)

// TeamScore is one leaderboard row: approved submissions counted per team.
type TeamScore struct {
	TeamID   uint   `json:"teamId"`
	TeamName string `json:"teamName"`
	Points   int    `json:"points"`
}

type TeamRepository interface {
	FindOrCreate(name string) (*models.Team, error)
	FindByID(id uint) (*models.Team, error)
	FindAll() ([]models.Team, error)
	Scores() ([]TeamScore, error)
}

type teamRepository struct {
	db *storage.SQLiteDB
}

func NewTeamRepository(db *storage.SQLiteDB) TeamRepository {
	return &teamRepository{db: db}
}

// FindOrCreate inserts the team unless the name is taken, then loads the row
// either way. Joining twice with one name therefore yields the same id.
func (r *teamRepository) FindOrCreate(name string) (*models.Team, error) {
	team := models.Team{Name: name}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&team).Error
	if err != nil {
		return nil, err
	}

	var existing models.Team
	if err := r.db.Where("name = ?", name).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *teamRepository) FindByID(id uint) (*models.Team, error) {
	var team models.Team
	if err := r.db.First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) FindAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Order("name ASC").Find(&teams).Error
	return teams, err
}

// Scores aggregates approved submissions per team. Teams without any
// submission still appear with zero points.
func (r *teamRepository) Scores() ([]TeamScore, error) {
	var scores []TeamScore
	err := r.db.Table("teams t").
		Select("t.id AS team_id, t.name AS team_name, COALESCE(SUM(CASE WHEN s.status = ? THEN 1 ELSE 0 END), 0) AS points", models.SubmissionApproved).
		Joins("LEFT JOIN submissions s ON s.team_id = t.id").
		Group("t.id, t.name").
		Order("points DESC, t.name ASC").
		Scan(&scores).Error
	return scores, err
}
