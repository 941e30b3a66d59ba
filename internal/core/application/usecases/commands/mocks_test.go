package commands_test

import (
	"context"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/identifier"
	"atelier/internal/core/domain/model/material"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/receipt"
	"atelier/internal/core/domain/model/sale"
	"atelier/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockJobOrderRepository struct{ mock.Mock }

func (m *MockJobOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockJobOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockJobOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockMaterialRepository struct{ mock.Mock }

func (m *MockMaterialRepository) Add(ctx context.Context, mat *material.Material) error {
	args := m.Called(ctx, mat)
	return args.Error(0)
}

func (m *MockMaterialRepository) Get(ctx context.Context, id int64) (*material.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*material.Material), args.Error(1)
}

type MockReceiptRepository struct{ mock.Mock }

func (m *MockReceiptRepository) Add(ctx context.Context, r *receipt.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockSaleRepository struct{ mock.Mock }

func (m *MockSaleRepository) Add(ctx context.Context, s *sale.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockIdentifierStore struct{ mock.Mock }

func (m *MockIdentifierStore) NextValue(ctx context.Context, kind identifier.Kind) (int64, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdentifierStore) Exists(ctx context.Context, kind identifier.Kind, value string) (bool, error) {
	args := m.Called(ctx, kind, value)
	return args.Bool(0), args.Error(1)
}

type MockAllocator struct{ mock.Mock }

func (m *MockAllocator) Allocate(ctx context.Context, store ports.IdentifierStore, kind identifier.Kind) (string, error) {
	args := m.Called(ctx, store, kind)
	return args.String(0), args.Error(1)
}

// MockUoW implements every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobOrderRepository() ports.JobOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.JobOrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) MaterialRepository() ports.MaterialRepository {
	args := m.Called()
	return args.Get(0).(ports.MaterialRepository)
}

func (m *MockUoW) ReceiptRepository() ports.ReceiptRepository {
	args := m.Called()
	return args.Get(0).(ports.ReceiptRepository)
}

func (m *MockUoW) SaleRepository() ports.SaleRepository {
	args := m.Called()
	return args.Get(0).(ports.SaleRepository)
}

func (m *MockUoW) IdentifierStore() ports.IdentifierStore {
	args := m.Called()
	return args.Get(0).(ports.IdentifierStore)
}

// mockFactory hands out one MockUoW under every factory interface.
type mockFactory struct {
	mock.Mock
	uow *MockUoW
}

func newMockFactory(uow *MockUoW) *mockFactory {
	f := &mockFactory{uow: uow}
	f.On("Create").Return(uow).Once()
	return f
}

func (f *mockFactory) create() *MockUoW {
	return f.MethodCalled("Create").Get(0).(*MockUoW)
}

type orderingFactory struct{ *mockFactory }

func (f orderingFactory) Create() commands.OrderingUoW { return f.create() }

type jobOrderFactory struct{ *mockFactory }

func (f jobOrderFactory) Create() commands.JobOrderUoW { return f.create() }

type customerFactory struct{ *mockFactory }

func (f customerFactory) Create() commands.CustomerUoW { return f.create() }

type materialFactory struct{ *mockFactory }

func (f materialFactory) Create() commands.MaterialUoW { return f.create() }

type receiptFactory struct{ *mockFactory }

func (f receiptFactory) Create() commands.ReceiptUoW { return f.create() }

type saleFactory struct{ *mockFactory }

func (f saleFactory) Create() commands.SaleUoW { return f.create() }
