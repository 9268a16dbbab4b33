// Package consumer adapts inbound Kafka messages into domain proposals and
// hands them to the pipeline service.
package consumer

import (
	"context"
	"encoding/json"
	"log/slog"

	"proposalbridge/internal/platform/kafka/consumer"
	"proposalbridge/internal/platform/metrics"
	"proposalbridge/internal/proposal/models"
	"proposalbridge/internal/proposal/routing"
	dErrors "proposalbridge/pkg/domain-errors"
)

// Processor is the pipeline entry point the handler feeds. Satisfied by the
// proposal service.
type Processor interface {
	Process(ctx context.Context, p *models.ProposalClient) (routing.Decision, error)
}

// Handler decodes inbound proposal events and runs them through the
// pipeline. Bad messages (undecodable or invalid) are logged, counted, and
// consumed: no redelivery, the producer owns data quality.
type Handler struct {
	processor Processor
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

type Option func(*Handler)

func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

func NewHandler(processor Processor, opts ...Option) (*Handler, error) {
	if processor == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "processor is required")
	}

	h := &Handler{
		processor: processor,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Handle implements the kafka consumer handler contract.
func (h *Handler) Handle(ctx context.Context, msg *consumer.Message) error {
	if h.metrics != nil {
		h.metrics.ProposalsConsumed.Inc()
	}

	var event ProposalClientEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		if h.metrics != nil {
			h.metrics.DecodeFailures.Inc()
		}
		h.logger.Error("failed to decode proposal event",
			"topic", msg.Topic,
			"offset", msg.Offset,
			"error", err,
		)
		return nil
	}

	h.logger.Info("received proposal event", "client", event.ClientName)

	if _, err := h.processor.Process(ctx, event.toDomain()); err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			// Invalid proposals are dropped: the error names the violated
			// rule, the producer is expected to fix and resend.
			h.logger.Warn("dropping invalid proposal",
				"client", event.ClientName,
				"reason", err,
			)
			return nil
		}
		return err
	}

	return nil
}
