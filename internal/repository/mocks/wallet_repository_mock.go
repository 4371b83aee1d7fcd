package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

// MockWalletRepository is a mock type for the WalletRepository type
type MockWalletRepository struct {
	mock.Mock
}

// GetWalletByOwnerID provides a mock function with given fields: ctx, ownerID
func (_m *MockWalletRepository) GetWalletByOwnerID(ctx context.Context, ownerID int) (*models.Wallet, error) {
	ret := _m.Called(ctx, ownerID)

	var r0 *models.Wallet
	if rf, ok := ret.Get(0).(func(context.Context, int) *models.Wallet); ok {
		r0 = rf(ctx, ownerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Wallet)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, ownerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Credit provides a mock function with given fields: ctx, ownerID, amount
func (_m *MockWalletRepository) Credit(ctx context.Context, ownerID int, amount int) (int, error) {
	ret := _m.Called(ctx, ownerID, amount)

	var r0 int
	if rf, ok := ret.Get(0).(func(context.Context, int, int) int); ok {
		r0 = rf(ctx, ownerID, amount)
	} else {
		r0 = ret.Get(0).(int)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, ownerID, amount)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateWalletTx provides a mock function with given fields: ctx, tx, ownerID
func (_m *MockWalletRepository) CreateWalletTx(ctx context.Context, tx pgx.Tx, ownerID int) error {
	ret := _m.Called(ctx, tx, ownerID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, int) error); ok {
		r0 = rf(ctx, tx, ownerID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// CreditTx provides a mock function with given fields: ctx, tx, ownerID, amount
func (_m *MockWalletRepository) CreditTx(ctx context.Context, tx pgx.Tx, ownerID int, amount int) (int, error) {
	ret := _m.Called(ctx, tx, ownerID, amount)

	var r0 int
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, int, int) int); ok {
		r0 = rf(ctx, tx, ownerID, amount)
	} else {
		r0 = ret.Get(0).(int)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, pgx.Tx, int, int) error); ok {
		r1 = rf(ctx, tx, ownerID, amount)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DebitTx provides a mock function with given fields: ctx, tx, ownerID, amount
func (_m *MockWalletRepository) DebitTx(ctx context.Context, tx pgx.Tx, ownerID int, amount int) (int, error) {
	ret := _m.Called(ctx, tx, ownerID, amount)

	var r0 int
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, int, int) int); ok {
		r0 = rf(ctx, tx, ownerID, amount)
	} else {
		r0 = ret.Get(0).(int)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, pgx.Tx, int, int) error); ok {
		r1 = rf(ctx, tx, ownerID, amount)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockWalletRepository creates a new instance of MockWalletRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWalletRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWalletRepository {
	mock := &MockWalletRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
