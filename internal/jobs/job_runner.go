package jobs

import (
	"time"

	"mountainride-backend/internal/config"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/repository"
	"mountainride-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentals repository.RentalRepository
	email   service.EmailService
	config  config.JobsConfig
	now     func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(rentals repository.RentalRepository, email service.EmailService, cfg config.JobsConfig) *JobRunner {
	return &JobRunner{
		rentals: rentals,
		email:   email,
		config:  cfg,
		now:     time.Now,
	}
}

// Config returns the schedules the runner was built with
func (jr *JobRunner) Config() config.JobsConfig {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	if err := jobFunc(); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		return
	}
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.ReportOverdueRentals()
}
