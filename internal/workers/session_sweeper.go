package workers

import (
	"context"
	"time"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/store"
)

// SessionSweeper periodically deletes expired session records.
//
// Expiry is enforced at resolution time, so sweeping only bounds table
// growth and never changes authorization outcomes. A missed sweep is
// harmless.
type SessionSweeper struct {
	sessions store.SessionRepository
	interval time.Duration

	done     chan struct{}
	stopOnce func()

	logger *logger.Logger
}

// NewSessionSweeper constructs a sweeper deleting expired sessions every
// interval.
func NewSessionSweeper(sessions store.SessionRepository, interval time.Duration, log *logger.Logger) *SessionSweeper {
	done := make(chan struct{})
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		done:     done,
		stopOnce: closeOnce(done),
		logger:   log,
	}
}

// Run sweeps on a ticker until Stop is called. It blocks and is intended to
// run as a background worker.
func (s *SessionSweeper) Run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.done:
			s.logger.Info().Msg("session sweeper stopped")
			return
		}
	}
}

// Stop requests termination. Idempotent.
func (s *SessionSweeper) Stop() {
	s.stopOnce()
}

func (s *SessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.sessions.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.logger.Err(err).Msg("session sweep failed")
		return
	}

	if removed > 0 {
		s.logger.Info().Int64("removed", removed).Msg("expired sessions swept")
	}
}
