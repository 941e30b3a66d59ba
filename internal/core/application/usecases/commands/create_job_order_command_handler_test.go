package commands_test

import (
	"errors"
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/identifier"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/material"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func linen() *material.Material {
	return material.RestoreMaterial(3, "10001", "Linen", kernel.ZeroMeasurements(), decimal.NewFromInt(20), true)
}

func existingCustomer() *customer.Customer {
	return customer.RestoreCustomer(5, "1", "Ann", "555", decimal.Zero, 0, true)
}

func createCommand(t *testing.T, items ...commands.ItemInput) commands.CreateJobOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateJobOrderCommand(commands.CreateJobOrderParams{
		CustomerID:    int64Ptr(5),
		TotalAmount:   decimal.RequireFromString("150.00"),
		AdvanceAmount: decimal.RequireFromString("50.00"),
		PaymentMethod: order.Cash,
		Items:         items,
	})
	require.NoError(t, err)
	return cmd
}

func TestCreateJobOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := createCommand(t, commands.ItemInput{
		Material: commands.MaterialRefFromID(3),
		Quantity: 1,
		Fees:     decimal.RequireFromString("150.00"),
	})

	uow := new(MockUoW)
	customers := new(MockCustomerRepository)
	materials := new(MockMaterialRepository)
	orders := new(MockJobOrderRepository)
	store := new(MockIdentifierStore)
	allocator := new(MockAllocator)

	var saved *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, int64(5)).Return(existingCustomer(), nil).Once(),
		uow.On("IdentifierStore").Return(store).Once(),
		allocator.On("Allocate", ctx, store, identifier.OrderNumber).Return("JO-0007", nil).Once(),
		uow.On("MaterialRepository").Return(materials).Once(),
		materials.On("Get", ctx, int64(3)).Return(linen(), nil).Once(),
		uow.On("JobOrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*order.Order)
				saved.AssignID(77)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := newMockFactory(uow)

	h := commands.NewCreateJobOrderCommandHandler(orderingFactory{factory}, allocator, 0, fixedClock)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
	require.NotNil(t, saved)
	assert.Equal(t, "JO-0007", saved.Number())
	assert.Equal(t, int64(5), saved.CustomerID())
	assert.Equal(t, order.Pending, saved.Status())
	assert.Equal(t, fixedNow.AddDate(0, 0, commands.DefaultDeliveryLeadDays), saved.DeliveryDate())
	assert.Equal(t, "100.00", saved.BalanceAmount().StringFixed(2))
	assert.Equal(t, "150.00", saved.CashAmount().StringFixed(2))
	assert.Equal(t, "0.00", saved.CardAmount().StringFixed(2))
	require.Len(t, saved.Items(), 1)
	assert.Equal(t, "150.00", saved.Items()[0].TotalAmount().StringFixed(2))

	mock.AssertExpectationsForObjects(t, uow, customers, materials, orders, allocator, factory)
}

func TestCreateJobOrderCommandHandler_Handle_InlineCustomer(t *testing.T) {
	ctx := t.Context()
	status := order.InProgress
	delivery := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewCreateJobOrderCommand(commands.CreateJobOrderParams{
		CustomerData:  &commands.CustomerData{Name: "Omar", Phone: "777"},
		Status:        &status,
		DeliveryDate:  &delivery,
		TotalAmount:   decimal.NewFromInt(200),
		PaymentMethod: order.Split,
	})
	require.NoError(t, err)

	uow := new(MockUoW)
	customers := new(MockCustomerRepository)
	materials := new(MockMaterialRepository)
	orders := new(MockJobOrderRepository)
	store := new(MockIdentifierStore)
	allocator := new(MockAllocator)

	var saved *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IdentifierStore").Return(store).Once(),
		allocator.On("Allocate", ctx, store, identifier.CustomerCode).Return("44", nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Add", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.Code() == "44" && c.Name() == "Omar"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*customer.Customer).AssignID(9)
		}).Return(nil).Once(),
		uow.On("IdentifierStore").Return(store).Once(),
		allocator.On("Allocate", ctx, store, identifier.OrderNumber).Return("JO-0001", nil).Once(),
		uow.On("MaterialRepository").Return(materials).Once(),
		uow.On("JobOrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateJobOrderCommandHandler(orderingFactory{newMockFactory(uow)}, allocator, 3, fixedClock)
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, int64(9), saved.CustomerID())
	assert.Equal(t, order.InProgress, saved.Status())
	assert.Equal(t, delivery, saved.DeliveryDate())
	assert.Equal(t, "100.00", saved.CashAmount().StringFixed(2))
	assert.Equal(t, "100.00", saved.CardAmount().StringFixed(2))
	mock.AssertExpectationsForObjects(t, uow, customers, orders, allocator)
	materials.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestCreateJobOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	cmd := createCommand(t)

	uow := new(MockUoW)
	customers := new(MockCustomerRepository)
	allocator := new(MockAllocator)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, int64(5)).Return(nil, errs.NewObjectNotFoundError("customer_id", int64(5))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateJobOrderCommandHandler(orderingFactory{newMockFactory(uow)}, allocator, 0, fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	allocator.AssertNotCalled(t, "Allocate", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateJobOrderCommandHandler_Handle_UnknownMaterial(t *testing.T) {
	ctx := t.Context()
	cmd := createCommand(t,
		commands.ItemInput{Material: commands.MaterialRefFromID(3), Quantity: 1, Fees: decimal.NewFromInt(10)},
		commands.ItemInput{Material: commands.MaterialRefFromID(404), Quantity: 1, Fees: decimal.NewFromInt(10)},
	)

	uow := new(MockUoW)
	customers := new(MockCustomerRepository)
	materials := new(MockMaterialRepository)
	orders := new(MockJobOrderRepository)
	store := new(MockIdentifierStore)
	allocator := new(MockAllocator)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, int64(5)).Return(existingCustomer(), nil).Once(),
		uow.On("IdentifierStore").Return(store).Once(),
		allocator.On("Allocate", ctx, store, identifier.OrderNumber).Return("JO-0001", nil).Once(),
		uow.On("MaterialRepository").Return(materials).Once(),
		materials.On("Get", ctx, int64(3)).Return(linen(), nil).Once(),
		materials.On("Get", ctx, int64(404)).Return(nil, errs.NewObjectNotFoundError("material", int64(404))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateJobOrderCommandHandler(orderingFactory{newMockFactory(uow)}, allocator, 0, fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "job_order_items[1].material")
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateJobOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateJobOrderCommandHandler(orderingFactory{&mockFactory{}}, new(MockAllocator), 0, nil)
	_, err := h.Handle(t.Context(), commands.CreateJobOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateJobOrderCommandIsNotConstructed)
}

func TestCreateJobOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewCreateJobOrderCommandHandler(orderingFactory{newMockFactory(uow)}, new(MockAllocator), 0, fixedClock)
	_, err := h.Handle(ctx, createCommand(t))

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestCreateJobOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	customers := new(MockCustomerRepository)
	materials := new(MockMaterialRepository)
	orders := new(MockJobOrderRepository)
	store := new(MockIdentifierStore)
	allocator := new(MockAllocator)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Get", ctx, int64(5)).Return(existingCustomer(), nil).Once(),
		uow.On("IdentifierStore").Return(store).Once(),
		allocator.On("Allocate", ctx, store, identifier.OrderNumber).Return("JO-0001", nil).Once(),
		uow.On("MaterialRepository").Return(materials).Once(),
		uow.On("JobOrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateJobOrderCommandHandler(orderingFactory{newMockFactory(uow)}, allocator, 0, fixedClock)
	_, err := h.Handle(ctx, createCommand(t))

	require.EqualError(t, err, "commit error")
	uow.AssertExpectations(t)
}
