package jobs

import (
	"fmt"
	"log/slog"

	"orders/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	customerServiceProbeJob *CustomerServiceProbeJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	customerGateway ports.CustomerValidationGateway,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		customerServiceProbeJob: NewCustomerServiceProbeJob(customerGateway, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.customerServiceProbeJob.Start(); err != nil {
		return fmt.Errorf("failed to start customer service probe job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.customerServiceProbeJob.Stop()
}
