package service

import (
	"strings"
	"sync"
	"time"

	"cityhunt/internal/blob"
	"cityhunt/internal/models"
	"cityhunt/internal/repository"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
)

// TimerStatus is the derived countdown view teams poll.
type TimerStatus struct {
	Running          bool `json:"running"`
	RemainingSeconds int  `json:"remainingSeconds"`
}

// RoundService owns team registration, the shared countdown and the round
// reset. Reset takes the write side of roundMu so it never interleaves with
// other round mutations.
type RoundService struct {
	repos          *repository.Repositories
	blobs          *blob.Store
	clock          clockwork.Clock
	defaultMinutes int
	roundMu        *sync.RWMutex
}

func NewRoundService(repos *repository.Repositories, blobs *blob.Store, clock clockwork.Clock, defaultMinutes int, roundMu *sync.RWMutex) *RoundService {
	return &RoundService{
		repos:          repos,
		blobs:          blobs,
		clock:          clock,
		defaultMinutes: defaultMinutes,
		roundMu:        roundMu,
	}
}

// Join registers a team by name, reusing the existing row when the name is
// already taken. Same name, same round, same team.
func (s *RoundService) Join(teamName string) (uint, error) {
	if strings.TrimSpace(teamName) == "" {
		return 0, validationErrorf("teamName is required")
	}

	s.roundMu.RLock()
	defer s.roundMu.RUnlock()

	team, err := s.repos.Team.FindOrCreate(teamName)
	if err != nil {
		return 0, storageError("failed to join team", err)
	}
	return team.ID, nil
}

// Teams lists all registered teams for the GM console, ordered by name.
func (s *RoundService) Teams() ([]models.Team, error) {
	teams, err := s.repos.Team.FindAll()
	if err != nil {
		return nil, storageError("failed to load teams", err)
	}
	return teams, nil
}

// StartTimer arms the round countdown, overwriting any running timer.
// A non-positive duration falls back to the configured round length.
func (s *RoundService) StartTimer(durationMinutes int) error {
	if durationMinutes <= 0 {
		durationMinutes = s.defaultMinutes
	}

	s.roundMu.RLock()
	defer s.roundMu.RUnlock()

	if err := s.repos.GameState.Upsert(s.clock.Now(), durationMinutes); err != nil {
		return storageError("failed to start timer", err)
	}
	return nil
}

// StopTimer removes the timer row, returning the round to "not running".
func (s *RoundService) StopTimer() error {
	s.roundMu.RLock()
	defer s.roundMu.RUnlock()

	if err := s.repos.GameState.Delete(); err != nil {
		return storageError("failed to stop timer", err)
	}
	return nil
}

// TimerStatus computes the remaining time. A missing row, a missing start or
// an elapsed duration all read as not running; nothing is written.
func (s *RoundService) TimerStatus() (TimerStatus, error) {
	state, err := s.repos.GameState.Find()
	if err != nil {
		return TimerStatus{}, storageError("failed to load timer", err)
	}
	if state == nil || state.StartTime == nil {
		return TimerStatus{}, nil
	}

	total := time.Duration(state.DurationMinutes) * time.Minute
	remaining := total - s.clock.Now().Sub(*state.StartTime)
	if remaining <= 0 {
		return TimerStatus{}, nil
	}
	return TimerStatus{Running: true, RemainingSeconds: int(remaining / time.Second)}, nil
}

// ResetRound clears the round: stored artifacts first, then all round-scoped
// tables in one transaction. The mission catalog survives. A failed blob
// sweep after the tables are already gone is logged as a degraded reset
// instead of failing the whole request.
func (s *RoundService) ResetRound() error {
	s.roundMu.Lock()
	defer s.roundMu.Unlock()

	blobErr := s.blobs.RemoveAll()

	if err := s.repos.ResetRound(); err != nil {
		return storageError("failed to reset round", err)
	}

	if blobErr != nil {
		log.Warnf("round reset degraded: tables cleared but some artifacts remain: %v", blobErr)
	}
	return nil
}
