package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"krishaBack/internal/models"
)

// redisBridge fans messages out to every instance through a pub/sub channel.
// Each instance delivers what it receives to its own sockets.
type redisBridge struct {
	client  *redis.Client
	channel string
	local   *WebSocketManager
	logger  zerolog.Logger
}

func newRedisBridge(client *redis.Client, channel string, local *WebSocketManager, logger zerolog.Logger) *redisBridge {
	return &redisBridge{
		client:  client,
		channel: channel,
		local:   local,
		logger:  logger.With().Str("component", "redis").Str("channel", channel).Logger(),
	}
}

func (b *redisBridge) NotifyMessage(ctx context.Context, msg models.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

// Subscribe forwards published messages to the local manager until ctx ends.
func (b *redisBridge) Subscribe(ctx context.Context) error {
	pubsub := b.client.Subscribe(ctx, b.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("subscribe %s: %w", b.channel, err)
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var msg models.Message
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				b.logger.Warn().Err(err).Msg("skip malformed message")
				continue
			}
			if err := b.local.NotifyMessage(ctx, msg); err != nil {
				b.logger.Debug().Err(err).Int("message_id", msg.ID).Msg("local delivery failed")
			}
		}
	}
}
