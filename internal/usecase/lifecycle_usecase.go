package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/domain/lifecycle"
	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// AdvanceRequest asks for one lifecycle step. Decision, Records and Artifact are side
// effects committed in the same write as the status change.
type AdvanceRequest struct {
	ProposalID      string
	Target          entities.ProposalStatus
	Actor           string
	ExpectedVersion int64

	Decision *entities.Decision
	Records  *interfaces.Records
	Artifact *entities.PaymentArtifact
	PolicyNo string
}

func (r AdvanceRequest) hasSideEffects() bool {
	return r.Decision != nil || r.Records != nil || r.Artifact != nil
}

// ILifecycleUseCase is the only writer of proposal status.
//
// Operator flow:
//   - decision usecase => Advance(UNDERWRITING_CONFIRMED | REJECTED) with the decision attached
//   - customer authenticates the artifact => MarkPaid()
//   - POST /proposals/{id}/policy => IssuePolicy()
//   - POST /proposals/{id}/lifecycle => UpdateLifecycle() (manual recovery / back office)
type ILifecycleUseCase interface {
	Advance(ctx context.Context, req AdvanceRequest) (entities.Proposal, error)
	MarkPaid(ctx context.Context, proposalID, actor string) (entities.Proposal, error)
	MarkIssued(ctx context.Context, proposalID, actor string) (entities.Proposal, error)
	Archive(ctx context.Context, proposalID, actor string) (entities.Proposal, error)
	IssuePolicy(ctx context.Context, proposalID, actor string) (entities.Proposal, error)
	UpdateLifecycle(ctx context.Context, proposalID string, target entities.ProposalStatus, actor string) (entities.Proposal, error)
}

type LifecycleOptions struct {
	StoreTimeout time.Duration
	// AllowIssueBeforePayment lets IssuePolicy reserve a policy number while the
	// proposal is still UNDERWRITING_CONFIRMED.
	AllowIssueBeforePayment bool
}

type LifecycleUseCase struct {
	repo     interfaces.IProposalRepository
	opts     LifecycleOptions
	log      *logger.Logger
	now      func() time.Time
	policyNo func(time.Time) string
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(repo interfaces.IProposalRepository, opts LifecycleOptions, log *logger.Logger) *LifecycleUseCase {
	return &LifecycleUseCase{
		repo:     repo,
		opts:     opts,
		log:      logger.OrNop(log).Component("lifecycle.usecase"),
		now:      func() time.Time { return time.Now().UTC() },
		policyNo: newPolicyNumber,
	}
}

func (u *LifecycleUseCase) Advance(ctx context.Context, req AdvanceRequest) (entities.Proposal, error) {
	id := strings.TrimSpace(req.ProposalID)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	if !lifecycle.Known(req.Target) {
		return entities.Proposal{}, &ValidationError{Fields: []FieldError{{Field: "status", Reason: "unknown lifecycle status"}}}
	}
	actor := strings.TrimSpace(req.Actor)
	if actor == "" {
		actor = "system"
	}

	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}

	if p.Status == req.Target {
		if req.hasSideEffects() {
			return entities.Proposal{}, invalidState(p.Status, req.Target)
		}
		return p, nil
	}
	if !lifecycle.CanAdvance(p.Status, req.Target) {
		if req.hasSideEffects() {
			return entities.Proposal{}, invalidState(p.Status, req.Target)
		}
		return entities.Proposal{}, illegal(p.Status, req.Target)
	}
	if req.ExpectedVersion > 0 && req.ExpectedVersion != p.Version {
		return entities.Proposal{}, ErrVersionConflict
	}

	at := u.now()
	cmd := interfaces.TransitionCommand{
		ProposalID:      id,
		From:            p.Status,
		To:              req.Target,
		ExpectedVersion: req.ExpectedVersion,
		Change:          entities.StatusChange{From: p.Status, To: req.Target, Actor: actor, At: at},
		Decision:        req.Decision,
		Records:         req.Records,
		Artifact:        req.Artifact,
	}
	if lifecycle.IsTerminal(req.Target) && p.AuthCode != "" {
		cmd.InvalidateAuthCode = p.AuthCode
	}
	if req.Target == entities.StatusPolicyIssued {
		cmd.PolicyNo = firstNonEmpty(p.PolicyNo, req.PolicyNo, u.policyNo(at))
	}

	sctx, cancel := withStoreTimeout(ctx, u.opts.StoreTimeout)
	updated, err := u.repo.Transition(sctx, cmd)
	cancel()
	switch {
	case errors.Is(err, interfaces.ErrConditionFailed):
		return u.afterLostRace(ctx, id, p.Status, req)
	case errors.Is(err, interfaces.ErrDuplicateKey):
		return entities.Proposal{}, ErrAuthCodeCollision
	case err != nil:
		u.log.Error("transition failed", "proposal_id", id, "from", p.Status, "to", req.Target, "error", err)
		return entities.Proposal{}, storeErr(err)
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}

	u.log.Info("proposal advanced", "proposal_id", id, "from", p.Status, "to", updated.Status, "actor", actor, "version", updated.Version)
	return updated, nil
}

// afterLostRace re-reads the proposal once another writer won the compare-and-swap.
func (u *LifecycleUseCase) afterLostRace(ctx context.Context, id string, from entities.ProposalStatus, req AdvanceRequest) (entities.Proposal, error) {
	cur, err := u.load(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	u.log.Warn("transition lost race", "proposal_id", id, "expected", from, "current", cur.Status, "target", req.Target)
	if cur.Status == req.Target && !req.hasSideEffects() {
		return cur, nil
	}
	if cur.Status == from {
		return entities.Proposal{}, ErrVersionConflict
	}
	return entities.Proposal{}, invalidState(cur.Status, req.Target)
}

func (u *LifecycleUseCase) MarkPaid(ctx context.Context, proposalID, actor string) (entities.Proposal, error) {
	return u.Advance(ctx, AdvanceRequest{ProposalID: proposalID, Target: entities.StatusPaid, Actor: actor})
}

func (u *LifecycleUseCase) MarkIssued(ctx context.Context, proposalID, actor string) (entities.Proposal, error) {
	return u.IssuePolicy(ctx, proposalID, actor)
}

func (u *LifecycleUseCase) Archive(ctx context.Context, proposalID, actor string) (entities.Proposal, error) {
	return u.Advance(ctx, AdvanceRequest{ProposalID: proposalID, Target: entities.StatusCompleted, Actor: actor})
}

// IssuePolicy assigns the policy number and advances PAID to POLICY_ISSUED.
//
// Repeated calls return the stored number. With AllowIssueBeforePayment the number is
// reserved at UNDERWRITING_CONFIRMED and the status advance waits for PAID.
func (u *LifecycleUseCase) IssuePolicy(ctx context.Context, proposalID, actor string) (entities.Proposal, error) {
	id := strings.TrimSpace(proposalID)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}

	switch p.Status {
	case entities.StatusPolicyIssued, entities.StatusCompleted:
		return p, nil
	case entities.StatusPaid:
		return u.Advance(ctx, AdvanceRequest{ProposalID: id, Target: entities.StatusPolicyIssued, Actor: actor, PolicyNo: p.PolicyNo})
	case entities.StatusUnderwritingConfirmed:
		if !u.opts.AllowIssueBeforePayment {
			return entities.Proposal{}, illegal(p.Status, entities.StatusPolicyIssued)
		}
		if p.PolicyNo != "" {
			return p, nil
		}
		return u.reservePolicyNumber(ctx, p)
	case entities.StatusRejected:
		return entities.Proposal{}, invalidState(p.Status, entities.StatusPolicyIssued)
	default:
		return entities.Proposal{}, illegal(p.Status, entities.StatusPolicyIssued)
	}
}

func (u *LifecycleUseCase) reservePolicyNumber(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	at := u.now()
	sctx, cancel := withStoreTimeout(ctx, u.opts.StoreTimeout)
	updated, err := u.repo.ReservePolicyNumber(sctx, p.ID, u.policyNo(at), at)
	cancel()
	if errors.Is(err, interfaces.ErrConditionFailed) {
		cur, lerr := u.load(ctx, p.ID)
		if lerr != nil {
			return entities.Proposal{}, lerr
		}
		if cur.PolicyNo != "" {
			return cur, nil
		}
		return entities.Proposal{}, invalidState(cur.Status, entities.StatusPolicyIssued)
	}
	if err != nil {
		return entities.Proposal{}, storeErr(err)
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	u.log.Info("policy number reserved before payment", "proposal_id", p.ID, "policy_no", updated.PolicyNo)
	return updated, nil
}

// UpdateLifecycle is the back-office entry point. Only post-decision targets are accepted,
// decisions go through the decision usecase.
func (u *LifecycleUseCase) UpdateLifecycle(ctx context.Context, proposalID string, target entities.ProposalStatus, actor string) (entities.Proposal, error) {
	switch entities.ProposalStatus(strings.ToUpper(strings.TrimSpace(string(target)))) {
	case entities.StatusPaid:
		return u.MarkPaid(ctx, proposalID, actor)
	case entities.StatusPolicyIssued:
		return u.MarkIssued(ctx, proposalID, actor)
	case entities.StatusCompleted:
		return u.Archive(ctx, proposalID, actor)
	}
	return entities.Proposal{}, &ValidationError{Fields: []FieldError{{
		Field:  "status",
		Reason: fmt.Sprintf("must be one of %s, %s, %s", entities.StatusPaid, entities.StatusPolicyIssued, entities.StatusCompleted),
	}}}
}

func (u *LifecycleUseCase) load(ctx context.Context, id string) (entities.Proposal, error) {
	return loadProposal(ctx, u.repo, u.opts.StoreTimeout, id)
}

func loadProposal(ctx context.Context, repo interfaces.IProposalRepository, timeout time.Duration, id string) (entities.Proposal, error) {
	sctx, cancel := withStoreTimeout(ctx, timeout)
	defer cancel()
	p, err := repo.GetByID(sctx, id)
	if err != nil {
		return entities.Proposal{}, storeErr(err)
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

// newPolicyNumber formats POL-YYYYMMDD-XXXXXXXX.
func newPolicyNumber(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("POL-%s-%s", at.Format("20060102"), suffix)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
