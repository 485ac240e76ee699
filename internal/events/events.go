package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"resort/config"
	"resort/infras/kafka"
	"resort/infras/otel"
	"resort/shared/constant"
	"resort/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Type string

const (
	TypeReservationCreated    Type = "reservation.created"
	TypeReservationCheckedIn  Type = "reservation.checked_in"
	TypeReservationCancelled  Type = "reservation.cancelled"
	TypeReservationCheckedOut Type = "reservation.checked_out"
	TypeChargeAdded           Type = "reservation.charge_added"
	TypeInventoryRestocked    Type = "inventory.restocked"
	TypeAmenityRented         Type = "amenity.rented"
	TypeAmenityReturned       Type = "amenity.returned"
)

// Event describes a committed state change. Key orders events of one aggregate on the same partition.
type Event struct {
	Type        Type      `json:"type"`
	AggregateID string    `json:"aggregate_id"`
	Actor       string    `json:"actor"`
	OccurredAt  time.Time `json:"occurred_at"`
	Payload     any       `json:"payload,omitempty"`
}

func New(ctx context.Context, eventType Type, aggregateID string, payload any) Event {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == constant.Empty {
		actor = constant.ContextSystem
	}

	return Event{
		Type:        eventType,
		AggregateID: aggregateID,
		Actor:       actor,
		OccurredAt:  timezone.Now(),
		Payload:     payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, batch ...Event) error
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

type noopPublisher struct{}

// NewPublisher returns a Kafka backed publisher, or one that drops events when Kafka is disabled.
func NewPublisher(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	if !cfg.Kafka.Enable || client == nil {
		log.Info().Msg("kafka disabled, domain events will not be published")

		return noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topic,
		otel:   otel,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, batch ...Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	messages := make([]kafka.Message, len(batch))
	for i, event := range batch {
		messages[i] = kafka.Message{
			Key:   event.AggregateID,
			Value: event,
		}
	}

	if err = p.client.SendMessages(ctx, p.topic, messages...); err != nil {
		log.Error().Err(err).Int("count", len(batch)).Msg("failed to publish events")

		return fmt.Errorf("failed to publish events: %w", err)
	}

	return nil
}

func (noopPublisher) Publish(_ context.Context, _ ...Event) error {
	return nil
}

// PublishAsync publishes after the caller's request is done; failures are only logged.
func PublishAsync(ctx context.Context, publisher Publisher, events ...Event) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := publisher.Publish(c, events...); err != nil {
			log.Error().Err(err).Msg("failed to publish events asynchronously")
		}
	}()
}
