// Package library manages a user's stored relationship with games: a play
// status plus a favorite flag per (user, game) pair.
package library

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a library entry is required but absent.
var ErrNotFound = errors.New("library entry not found")

// ErrGameNotFound is returned when the referenced game does not exist in
// the catalog.
var ErrGameNotFound = errors.New("game not found")

// Status is the play status of a library entry.
type Status string

const (
	StatusNone       Status = "NONE"
	StatusWantToPlay Status = "WANT_TO_PLAY"
	StatusPlaying    Status = "PLAYING"
	StatusCompleted  Status = "COMPLETED"
)

// ParseStatus validates and normalizes a wire status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNone, StatusWantToPlay, StatusPlaying, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("invalid status: %s", s)
	}
}

// Entry is one user's relationship with one game. AddedAt is set when the
// entry is first created and never changes afterwards.
type Entry struct {
	UserID     string    `json:"user_id"`
	GameID     int64     `json:"game_id"`
	Status     Status    `json:"status"`
	IsFavorite bool      `json:"is_favorite"`
	AddedAt    time.Time `json:"added_at"`
}

// FavoriteEvent notifies downstream consumers of a favorite flag change.
// IsFavorite reflects the resulting state, not a delta.
type FavoriteEvent struct {
	UserID     string `json:"user_id"`
	GameID     int64  `json:"game_id"`
	IsFavorite bool   `json:"is_favorite"`
}
