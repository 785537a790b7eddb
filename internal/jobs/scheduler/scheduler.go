package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"countdown-server/internal/observability"
)

// Job is periodic maintenance work
type Job interface {
	Name() string
	Run(ctx context.Context) error
	Interval() time.Duration
}

// Scheduler runs each registered job on its own ticker
type Scheduler struct {
	jobs   []Job
	logger *observability.Logger
}

func New(logger *observability.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
}

// Start runs every job once immediately and then on its interval. It blocks
// until ctx is cancelled and all jobs have returned.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("starting scheduler with %d jobs", len(s.jobs)))

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.loop(ctx, job)
		}(job)
	}
	wg.Wait()

	s.logger.Info(ctx, "scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "scheduled_job", Value: job.Name()},
		observability.Field{Key: "interval", Value: job.Interval().String()},
	)

	s.execute(ctx, job)

	ticker := time.NewTicker(job.Interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.execute(ctx, job)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, job Job) {
	start := time.Now()
	if err := job.Run(ctx); err != nil {
		s.logger.Error(ctx, fmt.Sprintf("scheduled job %s failed", job.Name()), err)
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "duration_ms", Value: time.Since(start).Milliseconds()})
	s.logger.Info(ctx, fmt.Sprintf("scheduled job %s completed", job.Name()))
}
