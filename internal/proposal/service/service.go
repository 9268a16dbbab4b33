// Package service orchestrates the proposal pipeline: validate the entity,
// evaluate routing, publish the outbound event. Transport and wire formats
// stay in the adapters.
package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"proposalbridge/internal/platform/metrics"
	"proposalbridge/internal/proposal/models"
	"proposalbridge/internal/proposal/ports"
	"proposalbridge/internal/proposal/routing"
	dErrors "proposalbridge/pkg/domain-errors"
)

// Service runs the proposal pipeline. Stateless apart from collaborators:
// safe for concurrent use.
type Service struct {
	publisher ports.EventPublisher
	router    *routing.Service
	metrics   *metrics.Metrics
	logger    *slog.Logger
	tracer    trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(publisher ports.EventPublisher, router *routing.Service, opts ...Option) (*Service, error) {
	if publisher == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "event publisher is required")
	}
	if router == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "routing service is required")
	}

	svc := &Service{
		publisher: publisher,
		router:    router,
		logger:    slog.Default(),
		tracer:    otel.Tracer("proposalbridge/internal/proposal/service"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Process validates the proposal, evaluates routing, and forwards the result
// downstream. Validation failures carry CodeInvariantViolation; publish
// failures are wrapped as CodeInternal. The returned decision is valid only
// when err is nil.
func (s *Service) Process(ctx context.Context, p *models.ProposalClient) (routing.Decision, error) {
	ctx, span := s.tracer.Start(ctx, "proposal.Process")
	defer span.End()

	if p == nil {
		return routing.Decision{}, dErrors.New(dErrors.CodeInvalidInput, "proposal is required")
	}

	s.logger.Info("processing proposal", "client", p.ClientName, "industry", p.Industry)

	if err := p.Validate(); err != nil {
		span.RecordError(err)
		if s.metrics != nil {
			s.metrics.ValidationFailures.Inc()
		}
		return routing.Decision{}, err
	}

	decision, err := s.router.Evaluate(p)
	if err != nil {
		span.RecordError(err)
		return routing.Decision{}, err
	}

	span.SetAttributes(
		attribute.String("proposal.industry", p.Industry),
		attribute.String("proposal.budget_category", decision.BudgetCategory.String()),
		attribute.String("proposal.review_team", decision.ReviewTeam.String()),
		attribute.Int("proposal.priority_score", decision.PriorityScore),
		attribute.Bool("proposal.auto_approve", decision.AutoApprove),
	)

	if err := s.publisher.Publish(ctx, p, decision); err != nil {
		span.RecordError(err)
		if s.metrics != nil {
			s.metrics.PublishFailures.Inc()
		}
		return routing.Decision{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to publish proposal event")
	}

	if s.metrics != nil {
		s.metrics.ProposalsPublished.Inc()
		s.metrics.ProposalsRouted.WithLabelValues(decision.ReviewTeam.String()).Inc()
		s.metrics.PriorityScore.Observe(float64(decision.PriorityScore))
		if decision.AutoApprove {
			s.metrics.AutoApproved.Inc()
		}
	}

	s.logger.Info("proposal published",
		"client", p.ClientName,
		"team", decision.ReviewTeam,
		"score", decision.PriorityScore,
		"auto_approve", decision.AutoApprove,
	)

	return decision, nil
}
