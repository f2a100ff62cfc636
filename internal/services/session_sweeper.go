package services

import (
	"context"
	"log"
	"time"

	"github.com/aiga-connect/AcademyBack/internal/observability"
)

type expiredSessionDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// SessionSweeper removes expired auth sessions. It runs outside the request
// path; Authenticate rejects expired sessions whether or not they were swept.
type SessionSweeper struct {
	sessions expiredSessionDeleter
	now      func() time.Time
}

func NewSessionSweeper(sessions expiredSessionDeleter) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		now:      time.Now,
	}
}

func (s *SessionSweeper) Sweep(ctx context.Context) (int64, error) {
	removed, err := s.sessions.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, err
	}
	observability.RecordSessionsSwept(removed)
	return removed, nil
}

// Run sweeps every interval until ctx is cancelled.
func (s *SessionSweeper) Run(ctx context.Context, interval time.Duration) {
	log.Printf("Session sweeper started (interval %s)", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Session sweeper stopped")
			return
		case <-ticker.C:
			removed, err := s.Sweep(ctx)
			if err != nil {
				log.Printf("Error sweeping expired sessions: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("Swept %d expired sessions", removed)
			}
		}
	}
}
