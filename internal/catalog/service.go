package catalog

import (
	"context"
)

// Service exposes catalog operations to the HTTP layer.
type Service struct {
	games     GameProvider
	platforms PlatformProvider
}

func NewService(games GameProvider, platforms PlatformProvider) *Service {
	return &Service{games: games, platforms: platforms}
}

// GetByID returns nil when the game does not exist upstream.
func (s *Service) GetByID(ctx context.Context, id int64) (*Game, error) {
	return s.games.FindByID(ctx, id)
}

func (s *Service) GetByIDs(ctx context.Context, ids []int64) ([]Game, error) {
	return s.games.FindByIDs(ctx, ids)
}

func (s *Service) SearchByName(ctx context.Context, name string) ([]Game, error) {
	return s.games.SearchByName(ctx, name)
}

// Filter returns one page of games matching the upstream filter expression.
// The upstream reports no total count for filtered queries, so the returned
// content length stands in as the total element count.
func (s *Service) Filter(ctx context.Context, filter, sort string, page, size int) (Page[Game], error) {
	offset := 0
	if page > 0 && size > 0 {
		offset = page * size
	}
	games, err := s.games.Filter(ctx, filter, sort, size, offset)
	if err != nil {
		return Page[Game]{}, err
	}
	return NewPage(games, page, size, int64(len(games))), nil
}

func (s *Service) ListPlatforms(ctx context.Context) ([]Platform, error) {
	return s.platforms.List(ctx)
}
