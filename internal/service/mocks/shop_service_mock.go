package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

// MockShopService is a mock type for the ShopService type
type MockShopService struct {
	mock.Mock
}

// GetOwnedItems provides a mock function with given fields: ctx, userID, monsterID
func (_m *MockShopService) GetOwnedItems(ctx context.Context, userID int, monsterID int) (*models.OwnedItemsResult, error) {
	ret := _m.Called(ctx, userID, monsterID)

	var r0 *models.OwnedItemsResult
	if rf, ok := ret.Get(0).(func(context.Context, int, int) *models.OwnedItemsResult); ok {
		r0 = rf(ctx, userID, monsterID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.OwnedItemsResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, userID, monsterID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PurchaseAccessory provides a mock function with given fields: ctx, userID, monsterID, itemID
func (_m *MockShopService) PurchaseAccessory(ctx context.Context, userID int, monsterID int, itemID string) (*models.PurchaseResult, error) {
	ret := _m.Called(ctx, userID, monsterID, itemID)

	var r0 *models.PurchaseResult
	if rf, ok := ret.Get(0).(func(context.Context, int, int, string) *models.PurchaseResult); ok {
		r0 = rf(ctx, userID, monsterID, itemID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.PurchaseResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int, string) error); ok {
		r1 = rf(ctx, userID, monsterID, itemID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PurchaseBackground provides a mock function with given fields: ctx, userID, monsterID, itemID
func (_m *MockShopService) PurchaseBackground(ctx context.Context, userID int, monsterID int, itemID string) (*models.PurchaseResult, error) {
	ret := _m.Called(ctx, userID, monsterID, itemID)

	var r0 *models.PurchaseResult
	if rf, ok := ret.Get(0).(func(context.Context, int, int, string) *models.PurchaseResult); ok {
		r0 = rf(ctx, userID, monsterID, itemID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.PurchaseResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int, string) error); ok {
		r1 = rf(ctx, userID, monsterID, itemID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PurchaseBoost provides a mock function with given fields: ctx, userID, monsterID, boostID
func (_m *MockShopService) PurchaseBoost(ctx context.Context, userID int, monsterID int, boostID string) (*models.BoostResult, error) {
	ret := _m.Called(ctx, userID, monsterID, boostID)

	var r0 *models.BoostResult
	if rf, ok := ret.Get(0).(func(context.Context, int, int, string) *models.BoostResult); ok {
		r0 = rf(ctx, userID, monsterID, boostID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.BoostResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int, string) error); ok {
		r1 = rf(ctx, userID, monsterID, boostID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockShopService creates a new instance of MockShopService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockShopService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockShopService {
	mock := &MockShopService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
