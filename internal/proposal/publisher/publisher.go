// Package publisher adapts processed proposals onto the outbound Kafka
// topic.
package publisher

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"proposalbridge/internal/proposal/models"
	"proposalbridge/internal/proposal/routing"
	dErrors "proposalbridge/pkg/domain-errors"
)

// Producer is the record-level publishing surface the adapter needs.
// Satisfied by the platform kafka producer.
type Producer interface {
	Produce(ctx context.Context, topic string, key, value []byte, headers map[string]string) error
}

// Publisher serializes proposal events and publishes them keyed by a fresh
// event ID. Implements ports.EventPublisher.
type Publisher struct {
	producer Producer
	topic    string
	logger   *slog.Logger
}

type Option func(*Publisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func New(producer Producer, topic string, opts ...Option) (*Publisher, error) {
	if producer == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "producer is required")
	}
	if topic == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "outbound topic is required")
	}

	pub := &Publisher{
		producer: producer,
		topic:    topic,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(pub)
	}
	return pub, nil
}

// Publish serializes the proposal and decision and produces one record.
// Each record gets a generated event ID as key and `event-id` header so
// downstream consumers can dedupe and correlate.
func (p *Publisher) Publish(ctx context.Context, proposal *models.ProposalClient, decision routing.Decision) error {
	value, err := json.Marshal(toEvent(proposal, decision))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode proposal event")
	}

	eventID := uuid.NewString()
	headers := map[string]string{"event-id": eventID}

	if err := p.producer.Produce(ctx, p.topic, []byte(eventID), value, headers); err != nil {
		return err
	}

	p.logger.Info("proposal event published",
		"topic", p.topic,
		"event_id", eventID,
		"team", decision.ReviewTeam,
	)
	return nil
}
