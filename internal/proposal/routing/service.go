// Package routing holds the stateless priority/routing rules applied to a
// validated proposal. Rules here span entity-derived classifications and
// review workflow policy, so they live in a domain service rather than on
// the entity itself.
package routing

import (
	"log/slog"

	"proposalbridge/internal/proposal/models"
	"proposalbridge/pkg/domain"
	dErrors "proposalbridge/pkg/domain-errors"
)

// Auto-approval budget ceiling and response-time bases, in the rule order
// they are applied: urgency beats enterprise beats the default.
const (
	autoApproveBudgetCeiling = 10_000

	responseHoursUrgent     = 4
	responseHoursEnterprise = 8
	responseHoursDefault    = 24
	responseHoursPerPain    = 2
)

// Decision is the full routing outcome for one proposal. Derived, never
// stored: the outbound event carries it downstream.
type Decision struct {
	PriorityScore  int
	BudgetCategory domain.BudgetCategory
	ReviewTeam     domain.ReviewTeam
	Urgent         bool
	AutoApprove    bool
	ResponseHours  int
}

// Service evaluates routing rules. Stateless: safe for concurrent use.
type Service struct {
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(opts ...Option) *Service {
	svc := &Service{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// ShouldAutoApprove reports whether the proposal can skip human review:
// complete, budget ceiling known and at most 10k, and not urgent. Urgency
// overrides an otherwise-qualifying low budget so flagged proposals always
// get a reviewer.
func (s *Service) ShouldAutoApprove(p *models.ProposalClient) (bool, error) {
	if p == nil {
		return false, dErrors.New(dErrors.CodeInvalidInput, "proposal is required")
	}
	return p.IsComplete() &&
		p.Budget != nil &&
		p.Budget.Max != nil &&
		*p.Budget.Max <= autoApproveBudgetCeiling &&
		!p.RequiresUrgentAttention(), nil
}

// AssignReviewTeam picks the review team. Enterprise clients always route to
// the enterprise team, ahead of the budget-category dispatch, even when both
// derive from the same ceiling.
func (s *Service) AssignReviewTeam(p *models.ProposalClient) (domain.ReviewTeam, error) {
	if p == nil {
		return "", dErrors.New(dErrors.CodeInvalidInput, "proposal is required")
	}
	if p.IsEnterpriseClient() {
		return domain.TeamEnterprise, nil
	}
	switch p.BudgetCategory() {
	case domain.BudgetPremium:
		return domain.TeamSenior, nil
	case domain.BudgetStandard:
		return domain.TeamStandard, nil
	default:
		return domain.TeamJunior, nil
	}
}

// EstimatedResponseTime returns the response estimate in hours: an urgency-
// then-enterprise base plus two hours per pain point.
// No upper clamp: many pain points legitimately push the estimate out.
func (s *Service) EstimatedResponseTime(p *models.ProposalClient) (int, error) {
	if p == nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "proposal is required")
	}
	hours := responseHoursDefault
	if p.RequiresUrgentAttention() {
		hours = responseHoursUrgent
	} else if p.IsEnterpriseClient() {
		hours = responseHoursEnterprise
	}
	return hours + len(p.PainPoints)*responseHoursPerPain, nil
}

// Evaluate runs every routing rule and the entity classifications once,
// returning the combined decision the pipeline forwards downstream.
func (s *Service) Evaluate(p *models.ProposalClient) (Decision, error) {
	if p == nil {
		return Decision{}, dErrors.New(dErrors.CodeInvalidInput, "proposal is required")
	}

	autoApprove, err := s.ShouldAutoApprove(p)
	if err != nil {
		return Decision{}, err
	}
	team, err := s.AssignReviewTeam(p)
	if err != nil {
		return Decision{}, err
	}
	hours, err := s.EstimatedResponseTime(p)
	if err != nil {
		return Decision{}, err
	}

	return Decision{
		PriorityScore:  p.PriorityScore(),
		BudgetCategory: p.BudgetCategory(),
		ReviewTeam:     team,
		Urgent:         p.RequiresUrgentAttention(),
		AutoApprove:    autoApprove,
		ResponseHours:  hours,
	}, nil
}
