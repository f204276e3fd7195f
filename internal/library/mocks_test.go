package library

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gamelib/internal/catalog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx context.Context, e *Entry) (Entry, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(Entry), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, e *Entry) (Entry, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(Entry), args.Error(1)
}

func (m *MockRepository) FindByUserAndGame(ctx context.Context, userID string, gameID int64) (*Entry, error) {
	args := m.Called(ctx, userID, gameID)
	if e, ok := args.Get(0).(*Entry); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) FindByUser(ctx context.Context, userID string) ([]Entry, error) {
	args := m.Called(ctx, userID)
	if e, ok := args.Get(0).([]Entry); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) FindFavorites(ctx context.Context, userID string, limit, offset int) ([]Entry, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	entries, _ := args.Get(0).([]Entry)
	return entries, args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) Delete(ctx context.Context, userID string, gameID int64) error {
	args := m.Called(ctx, userID, gameID)
	return args.Error(0)
}

type MockGameChecker struct {
	mock.Mock
}

func (m *MockGameChecker) FindByID(ctx context.Context, id int64) (*catalog.Game, error) {
	args := m.Called(ctx, id)
	if g, ok := args.Get(0).(*catalog.Game); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishFavorite(ctx context.Context, ev FavoriteEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}
