package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/repository"
)

// MockMonsterRepository is a mock type for the MonsterRepository type
type MockMonsterRepository struct {
	mock.Mock
}

// CreateMonster provides a mock function with given fields: ctx, ownerID, input
func (_m *MockMonsterRepository) CreateMonster(ctx context.Context, ownerID int, input *models.CreateMonsterInput) (*models.Monster, error) {
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

// GetMonsterByID provides a mock function with given fields: ctx, id
func (_m *MockMonsterRepository) GetMonsterByID(ctx context.Context, id int) (*models.Monster, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Monster
	if rf, ok := ret.Get(0).(func(context.Context, int) *models.Monster); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Monster)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetMonstersByOwnerID provides a mock function with given fields: ctx, ownerID, page, limit
func (_m *MockMonsterRepository) GetMonstersByOwnerID(ctx context.Context, ownerID int, page int, limit int) ([]models.Monster, int, error) {
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

// UpdateMonsterProgress provides a mock function with given fields: ctx, monster
func (_m *MockMonsterRepository) UpdateMonsterProgress(ctx context.Context, monster *models.Monster) error {
	ret := _m.Called(ctx, monster)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Monster) error); ok {
		r0 = rf(ctx, monster)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetVisibility provides a mock function with given fields: ctx, id, isPublic
func (_m *MockMonsterRepository) SetVisibility(ctx context.Context, id int, isPublic bool) error {
	ret := _m.Called(ctx, id, isPublic)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, bool) error); ok {
		r0 = rf(ctx, id, isPublic)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetPublicMonsters provides a mock function with given fields: ctx, filter, limit, offset
func (_m *MockMonsterRepository) GetPublicMonsters(ctx context.Context, filter repository.GalleryFilter, limit int, offset int) ([]models.PublicMonster, int, error) {
	ret := _m.Called(ctx, filter, limit, offset)

	var r0 []models.PublicMonster
	if rf, ok := ret.Get(0).(func(context.Context, repository.GalleryFilter, int, int) []models.PublicMonster); ok {
		r0 = rf(ctx, filter, limit, offset)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.PublicMonster)
		}
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, repository.GalleryFilter, int, int) int); ok {
		r1 = rf(ctx, filter, limit, offset)
	} else {
		r1 = ret.Get(1).(int)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, repository.GalleryFilter, int, int) error); ok {
		r2 = rf(ctx, filter, limit, offset)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// GetPublicLevels provides a mock function with given fields: ctx
func (_m *MockMonsterRepository) GetPublicLevels(ctx context.Context) ([]int, error) {
	ret := _m.Called(ctx)

	var r0 []int
	if rf, ok := ret.Get(0).(func(context.Context) []int); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]int)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetMonsterByIDForUpdateTx provides a mock function with given fields: ctx, tx, id
func (_m *MockMonsterRepository) GetMonsterByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id int) (*models.Monster, error) {
	ret := _m.Called(ctx, tx, id)

	var r0 *models.Monster
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, int) *models.Monster); ok {
		r0 = rf(ctx, tx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Monster)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, pgx.Tx, int) error); ok {
		r1 = rf(ctx, tx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateMonsterProgressTx provides a mock function with given fields: ctx, tx, monster
func (_m *MockMonsterRepository) UpdateMonsterProgressTx(ctx context.Context, tx pgx.Tx, monster *models.Monster) error {
	ret := _m.Called(ctx, tx, monster)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, pgx.Tx, *models.Monster) error); ok {
		r0 = rf(ctx, tx, monster)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockMonsterRepository creates a new instance of MockMonsterRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMonsterRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMonsterRepository {
	mock := &MockMonsterRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
