package jobs

import (
	"campusrent-backend/internal/config"
	"campusrent-backend/internal/ledger"
	"campusrent-backend/internal/logger"
	"campusrent-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	ledger *ledger.Ledger
	email  service.EmailService
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(l *ledger.Ledger, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		ledger: l,
		email:  email,
		config: cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
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
