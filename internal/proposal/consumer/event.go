package consumer

import "proposalbridge/internal/proposal/models"

// ProposalClientEvent is the inbound wire shape. Fields map 1:1 onto the
// domain entity; absent JSON fields stay nil/empty rather than collapsing to
// sentinel values, so the domain sees "unknown" where the producer sent
// nothing.
type ProposalClientEvent struct {
	ClientName      string            `json:"clientName"`
	Industry        string            `json:"industry"`
	CompanySize     string            `json:"companySize"`
	Context         string            `json:"context"`
	PainPoints      []string          `json:"painPoints"`
	BudgetRange     *BudgetRangeEvent `json:"budgetRange"`
	AdditionalNotes string            `json:"additionalNotes"`
}

// BudgetRangeEvent is the nested budget sub-object on the wire.
type BudgetRangeEvent struct {
	Min      *int   `json:"min"`
	Max      *int   `json:"max"`
	Currency string `json:"currency"`
}

// toDomain maps the wire event onto the domain entity. A missing budget
// sub-object stays nil; Validate rejects it later, the mapper does not.
func (e *ProposalClientEvent) toDomain() *models.ProposalClient {
	if e == nil {
		return nil
	}

	var budget *models.BudgetRange
	if e.BudgetRange != nil {
		budget = &models.BudgetRange{
			Min:      e.BudgetRange.Min,
			Max:      e.BudgetRange.Max,
			Currency: e.BudgetRange.Currency,
		}
	}

	return &models.ProposalClient{
		ClientName:      e.ClientName,
		Industry:        e.Industry,
		CompanySize:     e.CompanySize,
		Context:         e.Context,
		PainPoints:      e.PainPoints,
		Budget:          budget,
		AdditionalNotes: e.AdditionalNotes,
	}
}
