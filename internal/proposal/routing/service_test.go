package routing

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"proposalbridge/internal/proposal/models"
	"proposalbridge/pkg/domain"
	dErrors "proposalbridge/pkg/domain-errors"
)

func intPtr(n int) *int {
	return &n
}

func completeProposal() *models.ProposalClient {
	return &models.ProposalClient{
		ClientName:  "Acme",
		Industry:    "Retail",
		CompanySize: "SMALL",
		PainPoints:  []string{"slow reporting"},
		Budget:      &models.BudgetRange{Min: intPtr(1_000), Max: intPtr(8_000)},
	}
}

type RoutingServiceSuite struct {
	suite.Suite
	service *Service
}

func TestRoutingServiceSuite(t *testing.T) {
	suite.Run(t, new(RoutingServiceSuite))
}

func (s *RoutingServiceSuite) SetupTest() {
	s.service = New()
}

// =============================================================================
// ShouldAutoApprove Tests
// =============================================================================

func (s *RoutingServiceSuite) TestShouldAutoApprove() {
	s.Run("complete small non-urgent proposal qualifies", func() {
		ok, err := s.service.ShouldAutoApprove(completeProposal())
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("ceiling of exactly 10k still qualifies", func() {
		p := completeProposal()
		p.Budget.Max = intPtr(10_000)
		ok, err := s.service.ShouldAutoApprove(p)
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("incomplete proposal does not qualify even with a small budget", func() {
		p := completeProposal()
		p.PainPoints = []string{}
		ok, err := s.service.ShouldAutoApprove(p)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("unknown ceiling does not qualify", func() {
		p := completeProposal()
		p.Budget = &models.BudgetRange{Min: intPtr(500)}
		ok, err := s.service.ShouldAutoApprove(p)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("urgency overrides a qualifying budget", func() {
		p := completeProposal()
		p.PainPoints = []string{"a", "b", "c"}
		ok, err := s.service.ShouldAutoApprove(p)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("urgent large client with tiny qualifying budget never auto-approves", func() {
		p := completeProposal()
		p.CompanySize = "LARGE"
		p.Budget = &models.BudgetRange{Max: intPtr(1_000)}
		p.PainPoints = []string{"a", "b", "c"}
		s.Require().True(p.RequiresUrgentAttention())
		ok, err := s.service.ShouldAutoApprove(p)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("nil proposal is invalid input", func() {
		_, err := s.service.ShouldAutoApprove(nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

// =============================================================================
// AssignReviewTeam Tests
// =============================================================================

func (s *RoutingServiceSuite) TestAssignReviewTeam() {
	s.Run("enterprise client routes to the enterprise team", func() {
		p := completeProposal()
		p.CompanySize = "LARGE"
		p.Budget = &models.BudgetRange{Max: intPtr(150_000)}
		team, err := s.service.AssignReviewTeam(p)
		s.Require().NoError(err)
		s.Equal(domain.TeamEnterprise, team)
	})

	s.Run("enterprise precedence beats the category dispatch", func() {
		// A non-LARGE client with the same ceiling goes by category instead.
		p := completeProposal()
		p.CompanySize = "MEDIUM"
		p.Budget = &models.BudgetRange{Max: intPtr(150_000)}
		team, err := s.service.AssignReviewTeam(p)
		s.Require().NoError(err)
		s.Equal(domain.TeamJunior, team) // ENTERPRISE category has no branch
	})

	s.Run("premium budget routes to the senior team", func() {
		p := completeProposal()
		p.Budget = &models.BudgetRange{Max: intPtr(75_000)}
		team, err := s.service.AssignReviewTeam(p)
		s.Require().NoError(err)
		s.Equal(domain.TeamSenior, team)
	})

	s.Run("standard budget routes to the standard team", func() {
		p := completeProposal()
		p.Budget = &models.BudgetRange{Max: intPtr(25_000)}
		team, err := s.service.AssignReviewTeam(p)
		s.Require().NoError(err)
		s.Equal(domain.TeamStandard, team)
	})

	s.Run("basic and unspecified budgets route to the junior team", func() {
		p := completeProposal()
		p.Budget = &models.BudgetRange{Max: intPtr(5_000)}
		team, err := s.service.AssignReviewTeam(p)
		s.Require().NoError(err)
		s.Equal(domain.TeamJunior, team)

		p.Budget = nil
		team, err = s.service.AssignReviewTeam(p)
		s.Require().NoError(err)
		s.Equal(domain.TeamJunior, team)
	})

	s.Run("nil proposal is invalid input", func() {
		_, err := s.service.AssignReviewTeam(nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

// =============================================================================
// EstimatedResponseTime Tests
// =============================================================================

func (s *RoutingServiceSuite) TestEstimatedResponseTime() {
	s.Run("urgent base plus pain point factor", func() {
		p := completeProposal()
		p.PainPoints = []string{"a", "b", "c"} // three pain points make it urgent
		p.CompanySize = "SMALL"
		p.Budget = &models.BudgetRange{Max: intPtr(5_000)}
		hours, err := s.service.EstimatedResponseTime(p)
		s.Require().NoError(err)
		s.Equal(4+6, hours)
	})

	s.Run("non-urgent non-enterprise uses the 24 hour base", func() {
		p := completeProposal()
		p.PainPoints = []string{"a", "b"}
		hours, err := s.service.EstimatedResponseTime(p)
		s.Require().NoError(err)
		s.Equal(24+4, hours)
	})

	s.Run("enterprise clients get the urgent base, never the 8 hour one", func() {
		p := completeProposal()
		p.CompanySize = "LARGE"
		p.Budget = &models.BudgetRange{Max: intPtr(150_000)}
		p.PainPoints = []string{"a", "b"}
		// Enterprise implies urgent, so the 8 hour enterprise base is
		// unreachable and the urgent base wins.
		hours, err := s.service.EstimatedResponseTime(p)
		s.Require().NoError(err)
		s.Equal(4+4, hours)
	})

	s.Run("no pain points adds nothing", func() {
		p := completeProposal()
		p.PainPoints = nil
		hours, err := s.service.EstimatedResponseTime(p)
		s.Require().NoError(err)
		s.Equal(24, hours)
	})

	s.Run("nil proposal is invalid input", func() {
		_, err := s.service.EstimatedResponseTime(nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

// =============================================================================
// Evaluate Tests (worked scenarios)
// =============================================================================

func (s *RoutingServiceSuite) TestEvaluate() {
	s.Run("enterprise client with two pain points", func() {
		p := &models.ProposalClient{
			ClientName:  "Acme",
			Industry:    "Retail",
			CompanySize: "LARGE",
			PainPoints:  []string{"a", "b"},
			Budget:      &models.BudgetRange{Max: intPtr(150_000)},
		}
		d, err := s.service.Evaluate(p)
		s.Require().NoError(err)
		s.Equal(domain.BudgetEnterprise, d.BudgetCategory)
		s.Equal(domain.TeamEnterprise, d.ReviewTeam)
		s.True(d.Urgent) // enterprise alone makes it urgent
		s.False(d.AutoApprove)
		s.Equal(4+4, d.ResponseHours)
		s.Equal(50+10+20, d.PriorityScore)
	})

	s.Run("urgent base wins over enterprise base with three pain points", func() {
		p := &models.ProposalClient{
			ClientName:  "Acme",
			Industry:    "Retail",
			CompanySize: "LARGE",
			PainPoints:  []string{"a", "b", "c"},
			Budget:      &models.BudgetRange{Max: intPtr(150_000)},
		}
		d, err := s.service.Evaluate(p)
		s.Require().NoError(err)
		s.True(d.Urgent)
		s.Equal(4+6, d.ResponseHours)
	})

	s.Run("small complete proposal auto-approves", func() {
		d, err := s.service.Evaluate(completeProposal())
		s.Require().NoError(err)
		s.True(d.AutoApprove)
		s.Equal(domain.TeamJunior, d.ReviewTeam)
		s.Equal(domain.BudgetBasic, d.BudgetCategory)
	})

	s.Run("nil proposal is invalid input", func() {
		_, err := s.service.Evaluate(nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}
