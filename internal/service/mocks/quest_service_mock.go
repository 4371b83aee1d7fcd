package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

// MockQuestService is a mock type for the QuestService type
type MockQuestService struct {
	mock.Mock
}

// GetDailyQuests provides a mock function with given fields: ctx, userID
func (_m *MockQuestService) GetDailyQuests(ctx context.Context, userID int) (*models.UserQuests, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.UserQuests
	if rf, ok := ret.Get(0).(func(context.Context, int) *models.UserQuests); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.UserQuests)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// TrackAction provides a mock function with given fields: ctx, userID, action, monsterID
func (_m *MockQuestService) TrackAction(ctx context.Context, userID int, action models.QuestAction, monsterID int) error {
	ret := _m.Called(ctx, userID, action, monsterID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, models.QuestAction, int) error); ok {
		r0 = rf(ctx, userID, action, monsterID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ClaimQuestReward provides a mock function with given fields: ctx, userID, questID
func (_m *MockQuestService) ClaimQuestReward(ctx context.Context, userID int, questID models.QuestID) (*models.ClaimResult, error) {
	ret := _m.Called(ctx, userID, questID)

	var r0 *models.ClaimResult
	if rf, ok := ret.Get(0).(func(context.Context, int, models.QuestID) *models.ClaimResult); ok {
		r0 = rf(ctx, userID, questID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.ClaimResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, models.QuestID) error); ok {
		r1 = rf(ctx, userID, questID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockQuestService creates a new instance of MockQuestService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQuestService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuestService {
	mock := &MockQuestService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
