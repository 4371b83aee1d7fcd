package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/service"
)

// MockCheckoutProvider is a mock type for the CheckoutProvider type
type MockCheckoutProvider struct {
	mock.Mock
}

// VerifyWebhook provides a mock function with given fields: payload, signature
func (_m *MockCheckoutProvider) VerifyWebhook(payload []byte, signature string) (*service.CheckoutEvent, error) {
	ret := _m.Called(payload, signature)

	var r0 *service.CheckoutEvent
	if rf, ok := ret.Get(0).(func([]byte, string) *service.CheckoutEvent); ok {
		r0 = rf(payload, signature)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.CheckoutEvent)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func([]byte, string) error); ok {
		r1 = rf(payload, signature)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetSession provides a mock function with given fields: ctx, sessionID
func (_m *MockCheckoutProvider) GetSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	ret := _m.Called(ctx, sessionID)

	var r0 *service.CheckoutSession
	if rf, ok := ret.Get(0).(func(context.Context, string) *service.CheckoutSession); ok {
		r0 = rf(ctx, sessionID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.CheckoutSession)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, sessionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockCheckoutProvider creates a new instance of MockCheckoutProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCheckoutProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCheckoutProvider {
	mock := &MockCheckoutProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
