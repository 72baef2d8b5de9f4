package scheduler

import (
	"time"

	"agrimarket-backend/internal/jobs"
	"agrimarket-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// UTC with seconds precision; schedules in config carry six fields.
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	if _, err := s.cron.AddFunc(cfg.StartDueReservations, s.jobs.StartDueReservations); err != nil {
		logger.Error("Failed to register StartDueReservations job", "error", err)
	}
	if _, err := s.cron.AddFunc(cfg.CompleteElapsed, s.jobs.CompleteElapsedReservations); err != nil {
		logger.Error("Failed to register CompleteElapsedReservations job", "error", err)
	}
	if _, err := s.cron.AddFunc(cfg.ExpireStalePending, s.jobs.ExpireStalePending); err != nil {
		logger.Error("Failed to register ExpireStalePending job", "error", err)
	}
	if _, err := s.cron.AddFunc(cfg.RefreshReferenceCache, s.jobs.RefreshReferenceCache); err != nil {
		logger.Error("Failed to register RefreshReferenceCache job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler.
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}
