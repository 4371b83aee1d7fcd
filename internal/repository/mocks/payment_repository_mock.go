package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

// MockPaymentRepository is a mock type for the PaymentRepository type
type MockPaymentRepository struct {
	mock.Mock
}

// InsertCreditTx provides a mock function with given fields: ctx, tx, credit
func (_m *MockPaymentRepository) InsertCreditTx(ctx context.Context, tx pgx.Tx, credit *models.PaymentCredit) (bool, error) {
	ret := _m.Called(ctx, tx, credit)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, *models.PaymentCredit) bool); ok {
		r0 = rf(ctx, tx, credit)
	} else {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, pgx.Tx, *models.PaymentCredit) error); ok {
		r1 = rf(ctx, tx, credit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockPaymentRepository creates a new instance of MockPaymentRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentRepository {
	mock := &MockPaymentRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
