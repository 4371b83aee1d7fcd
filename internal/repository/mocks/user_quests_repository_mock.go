package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

// MockUserQuestsRepository is a mock type for the UserQuestsRepository type
type MockUserQuestsRepository struct {
	mock.Mock
}

// GetByUserID provides a mock function with given fields: ctx, userID
func (_m *MockUserQuestsRepository) GetByUserID(ctx context.Context, userID int) (*models.UserQuests, error) {
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

// Upsert provides a mock function with given fields: ctx, quests
func (_m *MockUserQuestsRepository) Upsert(ctx context.Context, quests *models.UserQuests) error {
	ret := _m.Called(ctx, quests)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.UserQuests) error); ok {
		r0 = rf(ctx, quests)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetByUserIDForUpdateTx provides a mock function with given fields: ctx, tx, userID
func (_m *MockUserQuestsRepository) GetByUserIDForUpdateTx(ctx context.Context, tx pgx.Tx, userID int) (*models.UserQuests, error) {
	ret := _m.Called(ctx, tx, userID)

	var r0 *models.UserQuests
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, int) *models.UserQuests); ok {
		r0 = rf(ctx, tx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.UserQuests)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, pgx.Tx, int) error); ok {
		r1 = rf(ctx, tx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateQuestsTx provides a mock function with given fields: ctx, tx, userID, activeQuests
func (_m *MockUserQuestsRepository) UpdateQuestsTx(ctx context.Context, tx pgx.Tx, userID int, activeQuests []models.ActiveQuest) error {
	ret := _m.Called(ctx, tx, userID, activeQuests)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, int, []models.ActiveQuest) error); ok {
		r0 = rf(ctx, tx, userID, activeQuests)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockUserQuestsRepository creates a new instance of MockUserQuestsRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserQuestsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserQuestsRepository {
	mock := &MockUserQuestsRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
