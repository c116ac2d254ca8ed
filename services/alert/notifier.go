package alertservice

import (
	"context"

	"labtrack/models"
	"labtrack/providers"

	jsoniter "github.com/json-iterator/go"
)

const AlertChannel = "labtrack:alerts"

// Notifier receives alert lifecycle updates.
type Notifier interface {
	Notify(ctx context.Context, event AlertEvent) error
}

// AlertEvent represents a lifecycle update.
type AlertEvent struct {
	Type  string       `json:"type"`
	Alert models.Alert `json:"alert"`
}

type redisNotifier struct {
	redis providers.RedisProvider
}

// NewRedisNotifier publishes events on AlertChannel.
func NewRedisNotifier(redis providers.RedisProvider) Notifier {
	return &redisNotifier{redis: redis}
}

func (n *redisNotifier) Notify(ctx context.Context, event AlertEvent) error {
	payload, err := jsoniter.Marshal(event)
	if err != nil {
		return err
	}
	return n.redis.Publish(ctx, AlertChannel, payload)
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, AlertEvent) error { return nil }
