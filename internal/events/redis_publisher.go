// Package events delivers domain events to downstream consumers over
// Redis pub/sub.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gamelib/internal/library"
	"gamelib/internal/metrics"
)

// RedisPublisher implements library.EventPublisher. Delivery is best-effort
// per event: a failed publish surfaces to the caller, nothing is buffered
// or retried.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	metrics metrics.Recorder
	log     *zap.Logger
}

func NewRedisPublisher(client *redis.Client, channel string, rec metrics.Recorder, log *zap.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, metrics: rec, log: log}
}

func (p *RedisPublisher) PublishFavorite(ctx context.Context, ev library.FavoriteEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal favorite event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.metrics.RecordFavoriteEvent(false)
		return fmt.Errorf("publish favorite event: %w", err)
	}
	p.metrics.RecordFavoriteEvent(true)

	p.log.Debug("favorite event published",
		zap.String("channel", p.channel),
		zap.String("user_id", ev.UserID),
		zap.Int64("game_id", ev.GameID),
		zap.Bool("is_favorite", ev.IsFavorite),
	)
	return nil
}
