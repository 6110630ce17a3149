package services

import (
	"context"
	"time"

	"github.com/rohits-web03/chainnotes/internal/logging"
)

type Expirer interface {
	ExpireOldDeleted(ctx context.Context) (int64, error)
}

// Sweeper purges expired recycle-bin notes on a fixed interval.
type Sweeper struct {
	notes    Expirer
	interval time.Duration
	log      logging.Logger
}

func NewSweeper(notes Expirer, interval time.Duration, log logging.Logger) *Sweeper {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Sweeper{notes: notes, interval: interval, log: log.With("component", "sweeper")}
}

// RunOnce performs one sweep. Failures are logged, never returned.
func (s *Sweeper) RunOnce(ctx context.Context) int64 {
	n, err := s.notes.ExpireOldDeleted(ctx)
	if err != nil {
		s.log.Error(ctx, "expire deleted notes", "error", err)
		return 0
	}
	s.log.Info(ctx, "expired deleted notes", "purged", n)
	return n
}

// Run sweeps immediately and then every interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) error {
	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}
