package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/jobs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockJobOrderLister struct {
	mock.Mock
}

func (m *MockJobOrderLister) Handle(ctx context.Context, query queries.ListJobOrdersQuery) ([]queries.JobOrderView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.JobOrderView)
	return views, args.Error(1)
}

var morning = time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

func todayOnly(query queries.ListJobOrdersQuery) bool {
	f := query.Filter()
	return f.DateField == queries.ByDeliveryDate &&
		f.From != nil && f.From.Equal(time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)) &&
		f.To != nil && f.To.Equal(time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)) &&
		f.Status == nil
}

func TestDueDeliveriesJob_Run(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	lister := new(MockJobOrderLister)
	lister.On("Handle", mock.Anything, mock.MatchedBy(todayOnly)).Return([]queries.JobOrderView{
		{Number: "JO-0001", Status: "completed", CustomerName: "Ann", BalanceAmount: decimal.NewFromInt(100)},
		{Number: "JO-0002", Status: "delivered", CustomerName: "Omar"},
		{Number: "JO-0003", Status: "pending", CustomerName: "Lina", IsBlocked: true},
	}, nil).Once()

	job := jobs.NewDueDeliveriesJob(lister, "", func() time.Time { return morning }, zap.New(core))
	due, err := job.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "JO-0001", due[0].Number)
	assert.Equal(t, "JO-0003", due[1].Number)

	dueLogs := logs.FilterMessage("delivery due").All()
	require.Len(t, dueLogs, 2)
	assert.Equal(t, "100.00", dueLogs[0].ContextMap()["balance_amount"])
	assert.Equal(t, int64(2), logs.FilterMessage("due deliveries checked").All()[0].ContextMap()["due"])
	lister.AssertExpectations(t)
}

func TestDueDeliveriesJob_RunPropagatesListErrors(t *testing.T) {
	lister := new(MockJobOrderLister)
	lister.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()

	job := jobs.NewDueDeliveriesJob(lister, "", func() time.Time { return morning }, zap.NewNop())
	due, err := job.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "2026-05-04")
	assert.Nil(t, due)
}

func TestJobManager_StartRejectsBadSchedule(t *testing.T) {
	manager := jobs.NewJobManager(jobs.NewDueDeliveriesJob(new(MockJobOrderLister), "every morning", nil, zap.NewNop()))

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "due deliveries job")
}

func TestJobManager_StartAndStop(t *testing.T) {
	manager := jobs.NewJobManager(jobs.NewDueDeliveriesJob(new(MockJobOrderLister), jobs.DefaultDueDeliveriesSchedule, nil, zap.NewNop()))

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
