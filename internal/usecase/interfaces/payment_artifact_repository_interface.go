package interfaces

import (
	"context"
	"time"

	"underwriting_service/internal/domain/entities"
)

// IPaymentArtifactRepository abstracts persistence for PaymentArtifact.
//
// Artifacts are created inside IProposalRepository.Transition, never on their own.
//
// Consume is a compare-and-swap on consumed_at:
//   - success returns the consumed artifact
//   - a missing code returns the zero value and nil
//   - an already consumed or invalidated artifact returns its stored state and ErrConditionFailed
type IPaymentArtifactRepository interface {
	GetByAuthCode(ctx context.Context, authCode string) (entities.PaymentArtifact, error)
	GetByProposalID(ctx context.Context, proposalID string) (entities.PaymentArtifact, error)
	Consume(ctx context.Context, authCode string, at time.Time) (entities.PaymentArtifact, error)
	SetCollectionLink(ctx context.Context, authCode string, link string) (entities.PaymentArtifact, error)
}
