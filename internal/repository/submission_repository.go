package repository

import (
	"time"

	"cityhunt/internal/models"
	"cityhunt/internal/storage"
)

// MissionStatus is the review state of a team's latest attempt at a mission.
type MissionStatus struct {
	MissionID uint   `json:"missionId"`
	Status    string `json:"status"`
}

// SubmissionDetail is the GM review row, denormalized with team and mission
// data for display.
type SubmissionDetail struct {
	ID             uint      `json:"id"`
	Filename       string    `json:"filename"`
	Mimetype       string    `json:"mimetype"`
	Status         string    `json:"status"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
	TeamID         uint      `json:"teamId"`
	TeamName       string    `json:"teamName"`
	MissionNumber  int       `json:"missionNumber"`
	MissionTitleDe string    `json:"missionTitleDe"`
	MissionTitleEn string    `json:"missionTitleEn"`
}

type SubmissionRepository interface {
	Create(submission *models.Submission) error
	FindByID(id uint) (*models.Submission, error)
	UpdateReview(id uint, status, comment string) error
	LatestPerMission(teamID uint) ([]MissionStatus, error)
	FindAllDetailed() ([]SubmissionDetail, error)
}

type submissionRepository struct {
	db *storage.SQLiteDB
}

func NewSubmissionRepository(db *storage.SQLiteDB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *models.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByID(id uint) (*models.Submission, error) {
	var submission models.Submission
	if err := r.db.First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// UpdateReview overwrites status and comment unconditionally; the last
// reviewer wins.
func (r *submissionRepository) UpdateReview(id uint, status, comment string) error {
	return r.db.Model(&models.Submission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "comment": comment}).Error
}

// LatestPerMission returns, for every mission the team submitted to, the
// status of the submission with the highest id. Older attempts for the same
// mission are superseded and never reported here.
func (r *submissionRepository) LatestPerMission(teamID uint) ([]MissionStatus, error) {
	latest := r.db.Model(&models.Submission{}).
		Select("MAX(id)").
		Where("team_id = ?", teamID).
		Group("mission_id")

	var statuses []MissionStatus
	err := r.db.Model(&models.Submission{}).
		Select("mission_id, status").
		Where("team_id = ? AND id IN (?)", teamID, latest).
		Scan(&statuses).Error
	return statuses, err
}

func (r *submissionRepository) FindAllDetailed() ([]SubmissionDetail, error) {
	var details []SubmissionDetail
	err := r.db.Table("submissions s").
		Select("s.id, s.filename, s.mimetype, s.status, s.comment, s.created_at, "+
			"t.id AS team_id, t.name AS team_name, "+
			"m.number AS mission_number, m.title_de AS mission_title_de, m.title_en AS mission_title_en").
		Joins("JOIN teams t ON t.id = s.team_id").
		Joins("JOIN missions m ON m.id = s.mission_id").
		Order("s.created_at DESC, s.id DESC").
		Scan(&details).Error
	return details, err
}
