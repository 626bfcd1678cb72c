package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/MixMaster_Go/internal/worker"
)

// Scheduler runs jobs at fixed intervals until stopped
type Scheduler struct {
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new scheduler
func New() *Scheduler {
	return &Scheduler{
		quit: make(chan struct{}),
	}
}

// Schedule runs job every interval, starting one interval from now. Jobs
// run on the scheduler's own goroutine, so a slow job delays its next tick
// rather than piling up.
func (s *Scheduler) Schedule(ctx context.Context, name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := job.Process(ctx); err != nil {
					slog.Warn("Scheduled job failed", "job", name, "error", err)
				}
			case <-ctx.Done():
				return
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs and waits for a running one to finish.
// Safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
