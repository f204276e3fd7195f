package library

import (
	"context"

	"gamelib/internal/catalog"
)

// Repository is the persistence port for library entries.
type Repository interface {
	Save(ctx context.Context, e *Entry) (Entry, error)
	// Update changes status and favorite flag only; added-at is immutable.
	Update(ctx context.Context, e *Entry) (Entry, error)
	// FindByUserAndGame returns nil without error when no entry exists.
	FindByUserAndGame(ctx context.Context, userID string, gameID int64) (*Entry, error)
	FindByUser(ctx context.Context, userID string) ([]Entry, error)
	// FindFavorites returns one page of favorite entries plus the total
	// favorite count for the user.
	FindFavorites(ctx context.Context, userID string, limit, offset int) ([]Entry, int64, error)
	Delete(ctx context.Context, userID string, gameID int64) error
}

// GameChecker verifies that a game exists in the catalog before a
// first-time entry creation.
type GameChecker interface {
	FindByID(ctx context.Context, id int64) (*catalog.Game, error)
}

// EventPublisher delivers favorite events to downstream consumers.
// Publishing is fire-and-forget per event: there is no buffering, and a
// failure surfaces to the caller even though the state change already
// took effect.
type EventPublisher interface {
	PublishFavorite(ctx context.Context, ev FavoriteEvent) error
}
