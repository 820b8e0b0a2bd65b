package service

import (
	"strings"
	"sync"

	"cityhunt/internal/models"
	"cityhunt/internal/repository"
)

// chatHistoryLimit caps how much chat history a single fetch returns.
const chatHistoryLimit = 200

// MessagingService covers both channels: direct team<->GM chat and
// one-to-many GM broadcasts with per-team receipts.
type MessagingService struct {
	messageRepo   repository.MessageRepository
	broadcastRepo repository.BroadcastRepository
	roundMu       *sync.RWMutex
}

func NewMessagingService(messageRepo repository.MessageRepository, broadcastRepo repository.BroadcastRepository, roundMu *sync.RWMutex) *MessagingService {
	return &MessagingService{
		messageRepo:   messageRepo,
		broadcastRepo: broadcastRepo,
		roundMu:       roundMu,
	}
}

// PostTeamMessage appends one chat line written by the team.
func (s *MessagingService) PostTeamMessage(teamID uint, text string) (uint, error) {
	return s.post(teamID, text, false)
}

// PostGMMessage appends one chat line written by the GM.
func (s *MessagingService) PostGMMessage(teamID uint, text string) (uint, error) {
	return s.post(teamID, text, true)
}

func (s *MessagingService) post(teamID uint, text string, fromGM bool) (uint, error) {
	if teamID == 0 || strings.TrimSpace(text) == "" {
		return 0, validationErrorf("teamId and text are required")
	}

	s.roundMu.RLock()
	defer s.roundMu.RUnlock()

	message := models.Message{TeamID: teamID, FromGM: fromGM, Text: text}
	if err := s.messageRepo.Create(&message); err != nil {
		return 0, storageError("failed to save message", err)
	}
	return message.ID, nil
}

// Messages returns up to the 200 most recent chat lines for a team in
// chronological order.
func (s *MessagingService) Messages(teamID uint) ([]models.Message, error) {
	if teamID == 0 {
		return nil, validationErrorf("teamId is required")
	}

	messages, err := s.messageRepo.FindRecentByTeam(teamID, chatHistoryLimit)
	if err != nil {
		return nil, storageError("failed to load messages", err)
	}
	return messages, nil
}

// ResetTeamChat wipes one team's chat without touching anything else.
func (s *MessagingService) ResetTeamChat(teamID uint) error {
	if teamID == 0 {
		return validationErrorf("teamId is required")
	}

	s.roundMu.RLock()
	defer s.roundMu.RUnlock()

	if err := s.messageRepo.DeleteByTeam(teamID); err != nil {
		return storageError("failed to reset team chat", err)
	}
	return nil
}

// PostBroadcast publishes one announcement to all teams.
func (s *MessagingService) PostBroadcast(text string) (uint, error) {
	if strings.TrimSpace(text) == "" {
		return 0, validationErrorf("text is required")
	}

	s.roundMu.RLock()
	defer s.roundMu.RUnlock()

	broadcast := models.Broadcast{Text: text}
	if err := s.broadcastRepo.Create(&broadcast); err != nil {
		return 0, storageError("failed to save broadcast", err)
	}
	return broadcast.ID, nil
}

// PendingBroadcasts lists announcements the team has not acknowledged,
// oldest first.
func (s *MessagingService) PendingBroadcasts(teamID uint) ([]models.Broadcast, error) {
	if teamID == 0 {
		return nil, validationErrorf("teamId is required")
	}

	broadcasts, err := s.broadcastRepo.FindPendingForTeam(teamID)
	if err != nil {
		return nil, storageError("failed to load broadcasts", err)
	}
	return broadcasts, nil
}

// AckBroadcast records that a team has seen a broadcast. Acknowledging the
// same broadcast twice is a no-op.
func (s *MessagingService) AckBroadcast(teamID, broadcastID uint) error {
	if teamID == 0 || broadcastID == 0 {
		return validationErrorf("teamId and broadcastId are required")
	}

	s.roundMu.RLock()
	defer s.roundMu.RUnlock()

	if err := s.broadcastRepo.Acknowledge(teamID, broadcastID); err != nil {
		return storageError("failed to acknowledge broadcast", err)
	}
	return nil
}
