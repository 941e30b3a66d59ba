package jobs

import (
	"context"
	"fmt"
	"time"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultDueDeliveriesSchedule runs the job every morning at 08:00.
const DefaultDueDeliveriesSchedule = "0 8 * * *"

// JobOrderLister is the read side the job needs.
// Implemented by queries.ListJobOrdersQueryHandler.
type JobOrderLister interface {
	Handle(ctx context.Context, query queries.ListJobOrdersQuery) ([]queries.JobOrderView, error)
}

// DueDeliveriesJob logs the active orders whose delivery date is today and
// that are not yet delivered.
type DueDeliveriesJob struct {
	lister   JobOrderLister
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewDueDeliveriesJob creates the job. An empty schedule uses
// DefaultDueDeliveriesSchedule; a nil clock uses the UTC wall clock.
func NewDueDeliveriesJob(lister JobOrderLister, schedule string, now func() time.Time, logger *zap.Logger) *DueDeliveriesJob {
	if schedule == "" {
		schedule = DefaultDueDeliveriesSchedule
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &DueDeliveriesJob{
		lister:   lister,
		schedule: schedule,
		now:      now,
		cron:     cron.New(),
		logger:   logger.Named("due_deliveries_job"),
	}
}

// Start registers the job with its cron schedule.
func (j *DueDeliveriesJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.Error("due deliveries job failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("due deliveries job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running execution to finish.
func (j *DueDeliveriesJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("due deliveries job stopped")
}

// Run lists today's pending deliveries, logs each one and returns them.
func (j *DueDeliveriesJob) Run(ctx context.Context) ([]queries.JobOrderView, error) {
	today := j.now().UTC().Format("2006-01-02")
	filter := queries.ParseFilter(queries.ByDeliveryDate, queries.FilterParams{
		FromDate: today,
		ToDate:   today,
	})

	views, err := j.lister.Handle(ctx, queries.NewListJobOrdersQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("list deliveries for %s: %w", today, err)
	}

	due := make([]queries.JobOrderView, 0, len(views))
	for _, v := range views {
		if v.Status == string(order.Delivered) {
			continue
		}
		due = append(due, v)
		j.logger.Info("delivery due",
			zap.String("job_order_number", v.Number),
			zap.String("customer_name", v.CustomerName),
			zap.String("customer_phone", v.CustomerPhone),
			zap.String("balance_amount", v.BalanceAmount.StringFixed(2)),
			zap.Bool("is_blocked", v.IsBlocked),
		)
	}

	j.logger.Info("due deliveries checked", zap.String("date", today), zap.Int("due", len(due)))
	return due, nil
}
