package service

import (
	"sync"
	"time"

	"cityhunt/internal/blob"
	"cityhunt/internal/repository"

	"github.com/jonboulle/clockwork"
)

// Options carries the few tunables the services need beyond their
// repositories. Clock defaults to the wall clock when nil.
type Options struct {
	GMPassword          string
	TokenSecret         string
	TokenTTL            time.Duration
	DefaultRoundMinutes int
	Clock               clockwork.Clock
}

type Services struct {
	Auth       *AuthService
	Round      *RoundService
	Submission *SubmissionService
	Messaging  *MessagingService
	Score      *ScoreService
}

// NewServices wires the service layer. All services share one round lock so
// a reset never interleaves with other round mutations.
func NewServices(repos *repository.Repositories, blobs *blob.Store, opts Options) (*Services, error) {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	auth, err := NewAuthService(opts.GMPassword, opts.TokenSecret, opts.TokenTTL)
	if err != nil {
		return nil, err
	}

	roundMu := &sync.RWMutex{}

	return &Services{
		Auth:       auth,
		Round:      NewRoundService(repos, blobs, opts.Clock, opts.DefaultRoundMinutes, roundMu),
		Submission: NewSubmissionService(repos.Submission, repos.Mission, blobs, roundMu),
		Messaging:  NewMessagingService(repos.Message, repos.Broadcast, roundMu),
		Score:      NewScoreService(repos.Team),
	}, nil
}
