package interfaces

import (
	"context"
	"errors"
	"time"

	"underwriting_service/internal/domain/entities"
)

// Store-level outcomes. Repositories return the zero value (and nil error) when an item
// does not exist; these sentinels cover the remaining conditional-write failures.
var (
	// ErrConditionFailed means the guarded write lost: status, version or consumption
	// state no longer matched what the caller expected.
	ErrConditionFailed = errors.New("store condition failed")
	// ErrDuplicateKey means a put collided with an existing primary key.
	ErrDuplicateKey = errors.New("store duplicate key")
)

// Records is the editable part of a proposal, replaced as a whole on every edit.
type Records struct {
	Vehicle   entities.VehicleRecord
	Owner     entities.PersonRecord
	Proposer  *entities.PersonRecord
	Insured   *entities.PersonRecord
	Coverages []entities.CoverageLine
}

// RecordsOf extracts the editable records from p.
func RecordsOf(p entities.Proposal) Records {
	return Records{
		Vehicle:   p.Vehicle,
		Owner:     p.Owner,
		Proposer:  p.Proposer,
		Insured:   p.Insured,
		Coverages: append([]entities.CoverageLine(nil), p.Coverages...),
	}
}

// TransitionCommand is a single atomic lifecycle write.
//
// The write succeeds only if the stored status still equals From (and Version equals
// ExpectedVersion when it is > 0). Every attached side effect lands in the same write
// or not at all.
type TransitionCommand struct {
	ProposalID      string
	From            entities.ProposalStatus
	To              entities.ProposalStatus
	ExpectedVersion int64
	Change          entities.StatusChange

	// Decision is appended to the decision log.
	Decision *entities.Decision
	// Records replaces the editable records (confirmed vehicle, persons, coverages).
	Records *Records
	// Artifact is created and referenced from the proposal.
	Artifact *entities.PaymentArtifact
	// InvalidateAuthCode marks the referenced artifact as invalidated.
	InvalidateAuthCode string
	// PolicyNo is set when non-empty.
	PolicyNo string
}

// IProposalRepository abstracts persistence for Proposal.
//
// The underwriting service must be able to:
//   - create a proposal when intake submits it
//   - edit records while the proposal is still SUBMITTED (optimistic, by version)
//   - advance status through compare-and-swap, together with its side effects
//   - capture a payment link and reserve a policy number without changing status
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByStatus(ctx context.Context, status entities.ProposalStatus) ([]entities.Proposal, error)
	UpdateRecords(ctx context.Context, id string, expectedVersion int64, records Records, at time.Time) (entities.Proposal, error)
	Transition(ctx context.Context, cmd TransitionCommand) (entities.Proposal, error)
	SetPaymentLink(ctx context.Context, id string, link string, at time.Time) (entities.Proposal, error)
	ReservePolicyNumber(ctx context.Context, id string, policyNo string, at time.Time) (entities.Proposal, error)
}
