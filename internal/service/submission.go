package service

import (
	"errors"
	"io"
	"sync"

	"cityhunt/internal/blob"
	"cityhunt/internal/models"
	"cityhunt/internal/repository"

	"gorm.io/gorm"
)

// SubmissionService accepts proof uploads and tracks them through GM review.
type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
	missionRepo    repository.MissionRepository
	blobs          *blob.Store
	roundMu        *sync.RWMutex
}

func NewSubmissionService(submissionRepo repository.SubmissionRepository, missionRepo repository.MissionRepository, blobs *blob.Store, roundMu *sync.RWMutex) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		missionRepo:    missionRepo,
		blobs:          blobs,
		roundMu:        roundMu,
	}
}

// Submit stores the artifact and inserts a pending submission row. Repeated
// submissions for the same mission pile up; the newest one is the one that
// counts.
func (s *SubmissionService) Submit(teamID, missionID uint, artifact io.Reader, originalName, mimetype string) (uint, error) {
	if teamID == 0 || missionID == 0 {
		return 0, validationErrorf("teamId and missionId are required")
	}
	if artifact == nil {
		return 0, validationErrorf("media file is required")
	}

	s.roundMu.RLock()
	defer s.roundMu.RUnlock()

	filename, err := s.blobs.Save(artifact, originalName)
	if err != nil {
		return 0, storageError("failed to store upload", err)
	}

	submission := models.Submission{
		TeamID:    teamID,
		MissionID: missionID,
		Filename:  filename,
		Mimetype:  mimetype,
		Status:    models.SubmissionPending,
	}
	if err := s.submissionRepo.Create(&submission); err != nil {
		return 0, storageError("failed to save submission", err)
	}
	return submission.ID, nil
}

// Review sets status and comment on one submission. Any of the three known
// states may be written, so a decision can be reverted to pending.
func (s *SubmissionService) Review(id uint, status, comment string) error {
	if !models.ValidSubmissionStatus(status) {
		return validationErrorf("invalid status %q", status)
	}

	if _, err := s.submissionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validationErrorf("submission %d not found", id)
		}
		return storageError("failed to load submission", err)
	}

	if err := s.submissionRepo.UpdateReview(id, status, comment); err != nil {
		return storageError("failed to update submission", err)
	}
	return nil
}

// MissionStatus reports, per mission the team submitted to, the status of the
// latest attempt.
func (s *SubmissionService) MissionStatus(teamID uint) ([]repository.MissionStatus, error) {
	if teamID == 0 {
		return nil, validationErrorf("teamId is required")
	}

	statuses, err := s.submissionRepo.LatestPerMission(teamID)
	if err != nil {
		return nil, storageError("failed to load mission status", err)
	}
	return statuses, nil
}

// ListAll returns every submission with team and mission details, newest
// first, for the GM review table.
func (s *SubmissionService) ListAll() ([]repository.SubmissionDetail, error) {
	details, err := s.submissionRepo.FindAllDetailed()
	if err != nil {
		return nil, storageError("failed to load submissions", err)
	}
	return details, nil
}

// Missions returns the full catalog ordered by number.
func (s *SubmissionService) Missions() ([]models.Mission, error) {
	missions, err := s.missionRepo.FindAll()
	if err != nil {
		return nil, storageError("failed to load missions", err)
	}
	return missions, nil
}
