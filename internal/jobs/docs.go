// Package jobs provides scheduled background tasks.
//
// Jobs use github.com/robfig/cron/v3 with standard five-field schedules.
//
// # Available Jobs
//
// DueDeliveriesJob runs once a day (DUE_DELIVERIES_SCHEDULE, default
// "0 8 * * *") and logs every active order due for delivery today that is
// not delivered yet.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.NewDueDeliveriesJob(lister, schedule, nil, logger))
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A failed run is logged and retried at the next tick.
package jobs
