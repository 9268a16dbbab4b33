// Package ports defines the outbound interfaces the proposal pipeline
// depends on. Adapters implement them; services only see these contracts.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks EventPublisher

import (
	"context"

	"proposalbridge/internal/proposal/models"
	"proposalbridge/internal/proposal/routing"
)

// EventPublisher forwards a processed proposal and its routing decision to
// the outbound topic. Implementations own the wire shape; note the outbound
// event deliberately omits the client name.
type EventPublisher interface {
	Publish(ctx context.Context, p *models.ProposalClient, decision routing.Decision) error
}
