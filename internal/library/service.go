package library

import (
	"context"
	"time"

	"gamelib/internal/catalog"
)

// Service applies the library lifecycle rules. It decides, per request,
// whether an entry is created, updated, or deleted, and when a favorite
// event must be emitted.
type Service struct {
	repo   Repository
	games  GameChecker
	events EventPublisher
}

func NewService(repo Repository, games GameChecker, events EventPublisher) *Service {
	return &Service{repo: repo, games: games, events: events}
}

// Upsert sets the play status for a (user, game) pair.
//
//	absent  + NONE          -> no-op, nothing stored
//	absent  + other         -> create (game must exist), favorite false
//	present + NONE, no fav  -> delete
//	present + NONE, fav     -> keep entry, status NONE (favorite alone justifies it)
//	present + other         -> update status, favorite and added-at unchanged
//
// The returned entry is nil when nothing is stored afterwards.
func (s *Service) Upsert(ctx context.Context, userID string, gameID int64, status Status) (*Entry, error) {
	existing, err := s.repo.FindByUserAndGame(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		if status == StatusNone {
			return nil, nil
		}
		if err := s.requireGame(ctx, gameID); err != nil {
			return nil, err
		}
		entry := Entry{
			UserID:     userID,
			GameID:     gameID,
			Status:     status,
			IsFavorite: false,
			AddedAt:    time.Now().UTC(),
		}
		saved, err := s.repo.Save(ctx, &entry)
		if err != nil {
			return nil, err
		}
		return &saved, nil
	}

	if status == StatusNone && !existing.IsFavorite {
		if err := s.repo.Delete(ctx, userID, gameID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	updated := *existing
	updated.Status = status
	result, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Favorite marks a game as favorite, creating a status-NONE entry when the
// user has none. An event is emitted on every call, reflecting the
// resulting state, so repeated calls stay idempotent in storage while
// still notifying consumers.
func (s *Service) Favorite(ctx context.Context, userID string, gameID int64) (*Entry, error) {
	existing, err := s.repo.FindByUserAndGame(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}

	var result Entry
	if existing != nil {
		updated := *existing
		updated.IsFavorite = true
		result, err = s.repo.Update(ctx, &updated)
		if err != nil {
			return nil, err
		}
	} else {
		if err := s.requireGame(ctx, gameID); err != nil {
			return nil, err
		}
		entry := Entry{
			UserID:     userID,
			GameID:     gameID,
			Status:     StatusNone,
			IsFavorite: true,
			AddedAt:    time.Now().UTC(),
		}
		result, err = s.repo.Save(ctx, &entry)
		if err != nil {
			return nil, err
		}
	}

	ev := FavoriteEvent{UserID: userID, GameID: gameID, IsFavorite: true}
	if err := s.events.PublishFavorite(ctx, ev); err != nil {
		return nil, err
	}
	return &result, nil
}

// Unfavorite clears the favorite flag. The entry must exist; clearing the
// flag on a status-NONE entry deletes it. The event is emitted only when
// the entry was actually favorite.
func (s *Service) Unfavorite(ctx context.Context, userID string, gameID int64) error {
	existing, err := s.repo.FindByUserAndGame(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	if existing.IsFavorite {
		ev := FavoriteEvent{UserID: userID, GameID: gameID, IsFavorite: false}
		if err := s.events.PublishFavorite(ctx, ev); err != nil {
			return err
		}
	}

	if existing.Status == StatusNone {
		return s.repo.Delete(ctx, userID, gameID)
	}

	updated := *existing
	updated.IsFavorite = false
	_, err = s.repo.Update(ctx, &updated)
	return err
}

// List returns every entry in the user's library.
func (s *Service) List(ctx context.Context, userID string) ([]Entry, error) {
	return s.repo.FindByUser(ctx, userID)
}

// Get returns the entry for a (user, game) pair, or ErrNotFound.
func (s *Service) Get(ctx context.Context, userID string, gameID int64) (*Entry, error) {
	entry, err := s.repo.FindByUserAndGame(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	return entry, nil
}

// Remove deletes the entry regardless of its state.
func (s *Service) Remove(ctx context.Context, userID string, gameID int64) error {
	return s.repo.Delete(ctx, userID, gameID)
}

// Favorites returns one page of the user's favorite entries. The total
// favorite count drives the page count.
func (s *Service) Favorites(ctx context.Context, userID string, page, size int) (catalog.Page[Entry], error) {
	offset := 0
	if page > 0 && size > 0 {
		offset = page * size
	}
	entries, total, err := s.repo.FindFavorites(ctx, userID, size, offset)
	if err != nil {
		return catalog.Page[Entry]{}, err
	}
	return catalog.NewPage(entries, page, size, total), nil
}

func (s *Service) requireGame(ctx context.Context, gameID int64) error {
	game, err := s.games.FindByID(ctx, gameID)
	if err != nil {
		return err
	}
	if game == nil {
		return ErrGameNotFound
	}
	return nil
}
