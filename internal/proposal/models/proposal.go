package models

import (
	"strings"

	"proposalbridge/pkg/domain"
	dErrors "proposalbridge/pkg/domain-errors"
)

// Priority score weights and rule thresholds. These drive queue ordering
// downstream, so changing them is a business decision, not a refactor.
const (
	enterpriseBudgetFloor = 100_000
	premiumBudgetFloor    = 50_000
	standardBudgetFloor   = 10_000

	scoreBudgetHigh = 50
	scoreBudgetMid  = 30
	scoreBudgetLow  = 10
	scorePerPain    = 5
	scoreLarge      = 20
	scoreMedium     = 10

	urgentPainThreshold = 3
)

// ProposalClient is one inbound proposal submission.
//
// Invariants (enforced by Validate):
//   - ClientName is non-blank
//   - Industry is non-blank
//   - Budget is present and passes its own validation
//
// The entity is constructed fully-formed by the inbound adapter and never
// mutated. Derived methods do not re-validate: they tolerate absent optional
// fields by treating them as unknown, so callers that care about invariants
// must call Validate first.
type ProposalClient struct {
	ClientName      string
	Industry        string
	CompanySize     string
	Context         string
	PainPoints      []string
	Budget          *BudgetRange
	AdditionalNotes string
}

// Validate checks the entity invariants. Returns CodeInvariantViolation
// naming the first violated rule. Budget violations are surfaced as-is from
// BudgetRange.Validate.
func (p *ProposalClient) Validate() error {
	if strings.TrimSpace(p.ClientName) == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "client name is required")
	}
	if strings.TrimSpace(p.Industry) == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "industry is required")
	}
	if p.Budget == nil {
		return dErrors.New(dErrors.CodeInvariantViolation, "budget range is required")
	}
	return p.Budget.Validate()
}

// IsEnterpriseClient reports whether this is an enterprise-level client:
// a LARGE company with a budget ceiling above 100k. Unknown budget or
// ceiling means not enterprise, never an error.
func (p *ProposalClient) IsEnterpriseClient() bool {
	return domain.CompanySizeLarge.EqualsFold(p.CompanySize) &&
		p.Budget != nil &&
		p.Budget.Max != nil &&
		*p.Budget.Max > enterpriseBudgetFloor
}

// RequiresUrgentAttention reports whether the proposal should jump the
// queue: enterprise clients, or proposals listing three or more pain points.
func (p *ProposalClient) RequiresUrgentAttention() bool {
	return p.IsEnterpriseClient() || len(p.PainPoints) >= urgentPainThreshold
}

// PriorityScore computes the additive queue-ordering score from three
// independent factors: budget ceiling band, pain-point count, and company
// size. An unknown ceiling contributes nothing to the budget factor.
func (p *ProposalClient) PriorityScore() int {
	score := 0

	if p.Budget != nil && p.Budget.Max != nil {
		switch {
		case *p.Budget.Max > enterpriseBudgetFloor:
			score += scoreBudgetHigh
		case *p.Budget.Max > premiumBudgetFloor:
			score += scoreBudgetMid
		default:
			score += scoreBudgetLow
		}
	}

	score += len(p.PainPoints) * scorePerPain

	if domain.CompanySizeLarge.EqualsFold(p.CompanySize) {
		score += scoreLarge
	} else if domain.CompanySizeMedium.EqualsFold(p.CompanySize) {
		score += scoreMedium
	}

	return score
}

// BudgetCategory buckets the budget ceiling for reporting. Thresholds are
// strict lower bounds; an unknown ceiling is UNSPECIFIED.
func (p *ProposalClient) BudgetCategory() domain.BudgetCategory {
	if p.Budget == nil || p.Budget.Max == nil {
		return domain.BudgetUnspecified
	}
	switch {
	case *p.Budget.Max > enterpriseBudgetFloor:
		return domain.BudgetEnterprise
	case *p.Budget.Max > premiumBudgetFloor:
		return domain.BudgetPremium
	case *p.Budget.Max > standardBudgetFloor:
		return domain.BudgetStandard
	default:
		return domain.BudgetBasic
	}
}

// IsComplete reports whether the proposal carries everything reviewers need.
// Stricter than Validate: the budget must be usable (IsValid) and at least
// one pain point must be listed. A proposal can be valid but incomplete.
func (p *ProposalClient) IsComplete() bool {
	return strings.TrimSpace(p.ClientName) != "" &&
		strings.TrimSpace(p.Industry) != "" &&
		p.Budget != nil && p.Budget.IsValid() &&
		len(p.PainPoints) > 0
}
