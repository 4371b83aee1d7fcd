package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

// MockPaymentService is a mock type for the PaymentService type
type MockPaymentService struct {
	mock.Mock
}

// HandleWebhookEvent provides a mock function with given fields: ctx, payload, signature
func (_m *MockPaymentService) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) error {
	ret := _m.Called(ctx, payload, signature)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []byte, string) error); ok {
		r0 = rf(ctx, payload, signature)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// VerifyCheckout provides a mock function with given fields: ctx, userID, sessionID
func (_m *MockPaymentService) VerifyCheckout(ctx context.Context, userID int, sessionID string) (*models.VerifyPaymentResult, error) {
	ret := _m.Called(ctx, userID, sessionID)

	var r0 *models.VerifyPaymentResult
	if rf, ok := ret.Get(0).(func(context.Context, int, string) *models.VerifyPaymentResult); ok {
		r0 = rf(ctx, userID, sessionID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.VerifyPaymentResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, string) error); ok {
		r1 = rf(ctx, userID, sessionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockPaymentService creates a new instance of MockPaymentService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPaymentService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentService {
	mock := &MockPaymentService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
