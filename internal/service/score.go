package service

import "cityhunt/internal/repository"

// ScoreService derives the leaderboard. Nothing is cached; every call
// recomputes the aggregate so it always reflects the latest review
// decisions.
type ScoreService struct {
	teamRepo repository.TeamRepository
}

func NewScoreService(teamRepo repository.TeamRepository) *ScoreService {
	return &ScoreService{teamRepo: teamRepo}
}

// Scores counts approved submissions per team, highest first, ties broken by
// team name.
func (s *ScoreService) Scores() ([]repository.TeamScore, error) {
	scores, err := s.teamRepo.Scores()
	if err != nil {
		return nil, storageError("failed to load scores", err)
	}
	return scores, nil
}
