package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
)

// MockOwnedItemRepository is a mock type for the OwnedItemRepository type
type MockOwnedItemRepository struct {
	mock.Mock
}

// GetOwnedItemIDs provides a mock function with given fields: ctx, kind, ownerID, monsterID
func (_m *MockOwnedItemRepository) GetOwnedItemIDs(ctx context.Context, kind models.OwnedItemKind, ownerID int, monsterID int) ([]string, error) {
	ret := _m.Called(ctx, kind, ownerID, monsterID)

	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context, models.OwnedItemKind, int, int) []string); ok {
		r0 = rf(ctx, kind, ownerID, monsterID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, models.OwnedItemKind, int, int) error); ok {
		r1 = rf(ctx, kind, ownerID, monsterID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// InsertTx provides a mock function with given fields: ctx, tx, kind, item
func (_m *MockOwnedItemRepository) InsertTx(ctx context.Context, tx pgx.Tx, kind models.OwnedItemKind, item *models.OwnedItem) error {
	ret := _m.Called(ctx, tx, kind, item)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, models.OwnedItemKind, *models.OwnedItem) error); ok {
		r0 = rf(ctx, tx, kind, item)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockOwnedItemRepository creates a new instance of MockOwnedItemRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockOwnedItemRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOwnedItemRepository {
	mock := &MockOwnedItemRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
