package jobs

import (
	"database/sql"

	"agrimarket-backend/internal/config"
	"agrimarket-backend/internal/logger"
	"agrimarket-backend/internal/repository/postgres"
	"agrimarket-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs.
type JobRunner struct {
	db       *sql.DB
	store    *postgres.Store
	services *Services
	config   *config.Config
}

// Services holds the service dependencies jobs need.
type Services struct {
	References    service.ReferenceService
	Notifications service.NotificationService
}

func NewJobRunner(db *sql.DB, store *postgres.Store, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		store:    store,
		services: services,
		config:   cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so one bad
// run cannot take the scheduler down.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs every daily job once, for manual execution.
func (jr *JobRunner) RunAllDailyJobs() {
	jr.StartDueReservations()
	jr.CompleteElapsedReservations()
	jr.ExpireStalePending()
	jr.RefreshReferenceCache()
}
