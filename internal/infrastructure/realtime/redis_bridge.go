package realtime

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewRedis creates and validates a go-redis client connection.
func NewRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Validate connectivity at startup
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}

// RedisBridge relays change events through a Redis channel so every replica's
// hub sees every write, not only the writes it served itself.
type RedisBridge struct {
	rdb     *redis.Client
	channel string
	hub     *Hub
}

func NewRedisBridge(rdb *redis.Client, channel string, hub *Hub) *RedisBridge {
	return &RedisBridge{rdb: rdb, channel: channel, hub: hub}
}

func (b *RedisBridge) Publish(ctx context.Context, msg []byte) error {
	return b.rdb.Publish(ctx, b.channel, msg).Err()
}

// Run forwards channel messages to the local hub until ctx is cancelled.
func (b *RedisBridge) Run(ctx context.Context) {
	sub := b.rdb.Subscribe(ctx, b.channel)
	defer sub.Close()

	log.Info().Str("channel", b.channel).Msg("[realtime][redis] subscribed")
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				log.Warn().Str("channel", b.channel).Msg("[realtime][redis] subscription closed")
				return
			}
			b.hub.Broadcast([]byte(m.Payload))
		}
	}
}
