package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tamagotcho/tamagotcho-be/internal/models"
	"github.com/tamagotcho/tamagotcho-be/internal/repository"
)

// MockGalleryService is a mock type for the GalleryService type
type MockGalleryService struct {
	mock.Mock
}

// ListPublicMonsters provides a mock function with given fields: ctx, filter, page, limit
func (_m *MockGalleryService) ListPublicMonsters(ctx context.Context, filter repository.GalleryFilter, page int, limit int) ([]models.PublicMonster, int, error) {
	ret := _m.Called(ctx, filter, page, limit)

	var r0 []models.PublicMonster
	if rf, ok := ret.Get(0).(func(context.Context, repository.GalleryFilter, int, int) []models.PublicMonster); ok {
		r0 = rf(ctx, filter, page, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.PublicMonster)
		}
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, repository.GalleryFilter, int, int) int); ok {
		r1 = rf(ctx, filter, page, limit)
	} else {
		r1 = ret.Get(1).(int)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, repository.GalleryFilter, int, int) error); ok {
		r2 = rf(ctx, filter, page, limit)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// AvailableLevels provides a mock function with given fields: ctx
func (_m *MockGalleryService) AvailableLevels(ctx context.Context) ([]int, error) {
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

// NewMockGalleryService creates a new instance of MockGalleryService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGalleryService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGalleryService {
	mock := &MockGalleryService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
