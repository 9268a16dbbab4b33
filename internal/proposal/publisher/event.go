package publisher

import (
	"proposalbridge/internal/proposal/models"
	"proposalbridge/internal/proposal/routing"
)

// ProposalEvent is the outbound wire shape. It deliberately carries no
// client name: downstream consumers work from the anonymized proposal plus
// the routing block. Do not merge this with the inbound DTO.
type ProposalEvent struct {
	Industry        string            `json:"industry"`
	CompanySize     string            `json:"companySize"`
	Context         string            `json:"context"`
	PainPoints      []string          `json:"painPoints"`
	BudgetRange     *BudgetRangeEvent `json:"budgetRange"`
	AdditionalNotes string            `json:"additionalNotes"`
	Routing         RoutingEvent      `json:"routing"`
}

// BudgetRangeEvent mirrors the inbound budget sub-object, nil-preserving.
type BudgetRangeEvent struct {
	Min      *int   `json:"min"`
	Max      *int   `json:"max"`
	Currency string `json:"currency"`
}

// RoutingEvent carries the routing decision downstream.
type RoutingEvent struct {
	ReviewTeam     string `json:"reviewTeam"`
	PriorityScore  int    `json:"priorityScore"`
	BudgetCategory string `json:"budgetCategory"`
	Urgent         bool   `json:"urgent"`
	AutoApprove    bool   `json:"autoApprove"`
	ResponseHours  int    `json:"estimatedResponseHours"`
}

// toEvent maps the domain entity and decision onto the outbound wire shape.
func toEvent(p *models.ProposalClient, decision routing.Decision) ProposalEvent {
	event := ProposalEvent{
		Industry:        p.Industry,
		CompanySize:     p.CompanySize,
		Context:         p.Context,
		PainPoints:      p.PainPoints,
		AdditionalNotes: p.AdditionalNotes,
		Routing: RoutingEvent{
			ReviewTeam:     decision.ReviewTeam.String(),
			PriorityScore:  decision.PriorityScore,
			BudgetCategory: decision.BudgetCategory.String(),
			Urgent:         decision.Urgent,
			AutoApprove:    decision.AutoApprove,
			ResponseHours:  decision.ResponseHours,
		},
	}
	if p.Budget != nil {
		event.BudgetRange = &BudgetRangeEvent{
			Min:      p.Budget.Min,
			Max:      p.Budget.Max,
			Currency: p.Budget.Currency,
		}
	}
	return event
}
