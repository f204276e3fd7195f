package catalog

import (
	"context"
	"errors"
)

// ErrUnavailable marks provider errors caused by the upstream catalog:
// transport failures, rejected credentials, and undecodable responses all
// wrap it. Handlers map it to 502.
var ErrUnavailable = errors.New("catalog upstream unavailable")

// GameProvider is the outbound port to the upstream game catalog.
type GameProvider interface {
	// FindByID returns nil without error when the game does not exist.
	FindByID(ctx context.Context, id int64) (*Game, error)
	// FindByIDs returns an empty slice for an empty id list without
	// calling the upstream.
	FindByIDs(ctx context.Context, ids []int64) ([]Game, error)
	SearchByName(ctx context.Context, name string) ([]Game, error)
	Filter(ctx context.Context, filter, sort string, limit, offset int) ([]Game, error)
}

// PlatformProvider is the outbound port for platform listings.
type PlatformProvider interface {
	List(ctx context.Context) ([]Platform, error)
}
