package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

// MockMonsterService is a mock type for the MonsterService type
type MockMonsterService struct {
	mock.Mock
}

// CreateMonster provides a mock function with given fields: ctx, ownerID, input
func (_m *MockMonsterService) CreateMonster(ctx context.Context, ownerID int, input *models.CreateMonsterInput) (*models.Monster, error) {
	ret := _m.Called(ctx, ownerID, input)

	var r0 *models.Monster
	if rf, ok := ret.Get(0).(func(context.Context, int, *models.CreateMonsterInput) *models.Monster); ok {
		r0 = rf(ctx, ownerID, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Monster)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, *models.CreateMonsterInput) error); ok {
		r1 = rf(ctx, ownerID, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetMonsters provides a mock function with given fields: ctx, ownerID, page, limit
func (_m *MockMonsterService) GetMonsters(ctx context.Context, ownerID int, page int, limit int) ([]models.Monster, int, error) {
	ret := _m.Called(ctx, ownerID, page, limit)

	var r0 []models.Monster
	if rf, ok := ret.Get(0).(func(context.Context, int, int, int) []models.Monster); ok {
		r0 = rf(ctx, ownerID, page, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.Monster)
		}
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, int, int, int) int); ok {
		r1 = rf(ctx, ownerID, page, limit)
	} else {
		r1 = ret.Get(1).(int)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, int, int, int) error); ok {
		r2 = rf(ctx, ownerID, page, limit)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// GetMonster provides a mock function with given fields: ctx, ownerID, monsterID
func (_m *MockMonsterService) GetMonster(ctx context.Context, ownerID int, monsterID int) (*models.Monster, error) {
	ret := _m.Called(ctx, ownerID, monsterID)

	var r0 *models.Monster
	if rf, ok := ret.Get(0).(func(context.Context, int, int) *models.Monster); ok {
		r0 = rf(ctx, ownerID, monsterID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Monster)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, ownerID, monsterID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PerformAction provides a mock function with given fields: ctx, ownerID, monsterID, action
func (_m *MockMonsterService) PerformAction(ctx context.Context, ownerID int, monsterID int, action models.MonsterAction) (*models.ActionResult, error) {
	ret := _m.Called(ctx, ownerID, monsterID, action)

	var r0 *models.ActionResult
	if rf, ok := ret.Get(0).(func(context.Context, int, int, models.MonsterAction) *models.ActionResult); ok {
		r0 = rf(ctx, ownerID, monsterID, action)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.ActionResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int, models.MonsterAction) error); ok {
		r1 = rf(ctx, ownerID, monsterID, action)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetVisibility provides a mock function with given fields: ctx, ownerID, monsterID, isPublic
func (_m *MockMonsterService) SetVisibility(ctx context.Context, ownerID int, monsterID int, isPublic bool) (*models.Monster, error) {
	ret := _m.Called(ctx, ownerID, monsterID, isPublic)

	var r0 *models.Monster
	if rf, ok := ret.Get(0).(func(context.Context, int, int, bool) *models.Monster); ok {
		r0 = rf(ctx, ownerID, monsterID, isPublic)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Monster)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int, bool) error); ok {
		r1 = rf(ctx, ownerID, monsterID, isPublic)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockMonsterService creates a new instance of MockMonsterService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMonsterService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMonsterService {
	mock := &MockMonsterService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
