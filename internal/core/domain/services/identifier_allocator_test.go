package services_test

import (
	"context"
	"errors"
	"testing"

	"atelier/internal/core/domain/model/identifier"
	"atelier/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIdentifierStore struct{ mock.Mock }

func (m *MockIdentifierStore) NextValue(ctx context.Context, kind identifier.Kind) (int64, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIdentifierStore) Exists(ctx context.Context, kind identifier.Kind, value string) (bool, error) {
	args := m.Called(ctx, kind, value)
	return args.Bool(0), args.Error(1)
}

// sequenceSource replays digits in order.
type sequenceSource struct {
	digits []int
	pos    int
}

func (s *sequenceSource) IntN(_ int) int {
	d := s.digits[s.pos%len(s.digits)]
	s.pos++
	return d
}

// memoryStore is an in-memory store used to check sequential allocations.
type memoryStore struct {
	counters map[identifier.Kind]int64
	used     map[string]bool
}

func (s *memoryStore) NextValue(_ context.Context, kind identifier.Kind) (int64, error) {
	s.counters[kind]++
	return s.counters[kind], nil
}

func (s *memoryStore) Exists(_ context.Context, _ identifier.Kind, value string) (bool, error) {
	return s.used[value], nil
}

func TestIdentifierAllocator_Sequence(t *testing.T) {
	ctx := t.Context()
	store := new(MockIdentifierStore)
	store.On("NextValue", ctx, identifier.OrderNumber).Return(int64(4), nil).Once()
	store.On("NextValue", ctx, identifier.ReceiptNumber).Return(int64(12), nil).Once()
	store.On("NextValue", ctx, identifier.CustomerCode).Return(int64(101), nil).Once()

	a := services.NewIdentifierAllocator(nil, 0)

	number, err := a.Allocate(ctx, store, identifier.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, "JO-0004", number)

	receipt, err := a.Allocate(ctx, store, identifier.ReceiptNumber)
	require.NoError(t, err)
	assert.Equal(t, "RCP012", receipt)

	code, err := a.Allocate(ctx, store, identifier.CustomerCode)
	require.NoError(t, err)
	assert.Equal(t, "101", code)

	store.AssertExpectations(t)
}

func TestIdentifierAllocator_SequenceError(t *testing.T) {
	ctx := t.Context()
	store := new(MockIdentifierStore)
	store.On("NextValue", ctx, identifier.OrderNumber).Return(int64(0), errors.New("db down")).Once()

	_, err := services.NewIdentifierAllocator(nil, 0).Allocate(ctx, store, identifier.OrderNumber)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestIdentifierAllocator_RandomRetriesOnCollision(t *testing.T) {
	ctx := t.Context()
	src := &sequenceSource{digits: []int{1, 2, 3, 4, 5, 9, 9, 9, 9, 9}}
	store := new(MockIdentifierStore)
	mock.InOrder(
		store.On("Exists", ctx, identifier.MaterialSKU, "12345").Return(true, nil).Once(),
		store.On("Exists", ctx, identifier.MaterialSKU, "99999").Return(false, nil).Once(),
	)

	sku, err := services.NewIdentifierAllocator(src, 5).Allocate(ctx, store, identifier.MaterialSKU)

	require.NoError(t, err)
	assert.Equal(t, "99999", sku)
	store.AssertExpectations(t)
}

func TestIdentifierAllocator_RandomExhausted(t *testing.T) {
	ctx := t.Context()
	store := new(MockIdentifierStore)
	store.On("Exists", ctx, identifier.SaleNumber, mock.AnythingOfType("string")).Return(true, nil).Times(3)

	_, err := services.NewIdentifierAllocator(&sequenceSource{digits: []int{7}}, 3).
		Allocate(ctx, store, identifier.SaleNumber)

	require.ErrorIs(t, err, services.ErrIdentifierSpaceExhausted)
	store.AssertNumberOfCalls(t, "Exists", 3)
}

func TestIdentifierAllocator_RandomStoreError(t *testing.T) {
	ctx := t.Context()
	store := new(MockIdentifierStore)
	store.On("Exists", ctx, identifier.SaleNumber, "SALE-777777").Return(false, errors.New("timeout")).Once()

	_, err := services.NewIdentifierAllocator(&sequenceSource{digits: []int{7}}, 3).
		Allocate(ctx, store, identifier.SaleNumber)

	require.Error(t, err)
	require.NotErrorIs(t, err, services.ErrIdentifierSpaceExhausted)
}

func TestIdentifierAllocator_UnknownKind(t *testing.T) {
	_, err := services.NewIdentifierAllocator(nil, 0).Allocate(t.Context(), new(MockIdentifierStore), identifier.Kind("x"))
	require.Error(t, err)
}

func TestIdentifierAllocator_SequentialCallsAreDistinct(t *testing.T) {
	ctx := t.Context()
	store := &memoryStore{counters: map[identifier.Kind]int64{identifier.CustomerCode: 9}, used: map[string]bool{}}
	a := services.NewIdentifierAllocator(nil, 0)

	seen := map[string]bool{}
	var previous string
	for range 25 {
		number, err := a.Allocate(ctx, store, identifier.OrderNumber)
		require.NoError(t, err)
		assert.False(t, seen[number])
		assert.Greater(t, number, previous, "zero padded numbers sort in allocation order")
		seen[number] = true
		previous = number
	}

	code, err := a.Allocate(ctx, store, identifier.CustomerCode)
	require.NoError(t, err)
	assert.Equal(t, "10", code)

	for range 25 {
		sale, err := a.Allocate(ctx, store, identifier.SaleNumber)
		require.NoError(t, err)
		assert.False(t, store.used[sale])
		store.used[sale] = true
	}
}
