package models

import "time"

// SubmissionStatus is the review state of one proof upload.
type SubmissionStatus = string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// ValidSubmissionStatus reports whether s is one of the three review states.
func ValidSubmissionStatus(s string) bool {
	switch s {
	case SubmissionPending, SubmissionApproved, SubmissionRejected:
		return true
	}
	return false
}

// Submission is one proof artifact a team uploaded for a mission. Teams may
// submit repeatedly for the same mission; the row with the highest id is the
// one that counts for that mission's status.
type Submission struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TeamID    uint      `json:"team_id"`
	MissionID uint      `json:"mission_id"`
	Filename  string    `json:"filename"`
	Mimetype  string    `json:"mimetype"`
	Status    string    `json:"status" gorm:"default:pending"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
