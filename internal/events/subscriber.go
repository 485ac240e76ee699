package events

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/kafka"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Subscriber drops the cached dashboard whenever another instance commits a change.
type Subscriber struct {
	cfg    *config.Config
	client kafka.Client
	cache  cache.RedisCache
}

func NewSubscriber(cfg *config.Config, client kafka.Client, cache cache.RedisCache) *Subscriber {
	return &Subscriber{
		cfg:    cfg,
		client: client,
		cache:  cache,
	}
}

// Run blocks until ctx is cancelled. It returns immediately when Kafka is disabled.
func (s *Subscriber) Run(ctx context.Context) {
	if !s.cfg.Kafka.Enable || s.client == nil {
		return
	}

	s.client.Consume(ctx, s.cfg.Kafka.ConsumerGroup, s.cfg.Kafka.Topic, s.Handle)
}

func (s *Subscriber) Handle(ctx context.Context, message kafkaGo.Message) error {
	event, err := kafka.Decode[Event](message)
	if err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}

	log.Info().
		Str("type", string(event.Type)).
		Str("aggregate", event.AggregateID).
		Str("actor", event.Actor).
		Msg("domain event received")

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixDashboard)

	return nil
}
