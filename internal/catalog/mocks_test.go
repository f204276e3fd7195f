package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGameProvider struct {
	mock.Mock
}

func (m *MockGameProvider) FindByID(ctx context.Context, id int64) (*Game, error) {
	args := m.Called(ctx, id)
	if g, ok := args.Get(0).(*Game); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameProvider) FindByIDs(ctx context.Context, ids []int64) ([]Game, error) {
	args := m.Called(ctx, ids)
	if g, ok := args.Get(0).([]Game); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameProvider) SearchByName(ctx context.Context, name string) ([]Game, error) {
	args := m.Called(ctx, name)
	if g, ok := args.Get(0).([]Game); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGameProvider) Filter(ctx context.Context, filter, sort string, limit, offset int) ([]Game, error) {
	args := m.Called(ctx, filter, sort, limit, offset)
	if g, ok := args.Get(0).([]Game); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPlatformProvider struct {
	mock.Mock
}

func (m *MockPlatformProvider) List(ctx context.Context) ([]Platform, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).([]Platform); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
