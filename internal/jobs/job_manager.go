package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dueDeliveriesJob *DueDeliveriesJob
}

func NewJobManager(dueDeliveriesJob *DueDeliveriesJob) *JobManager {
	return &JobManager{dueDeliveriesJob: dueDeliveriesJob}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dueDeliveriesJob.Start(); err != nil {
		return fmt.Errorf("failed to start due deliveries job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dueDeliveriesJob.Stop()
}
