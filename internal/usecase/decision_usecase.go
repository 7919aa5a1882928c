package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/domain/premium"
	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	dateLayout      = "2006-01-02"
	maxMintAttempts = 3
)

// DecisionInput is the underwriter's ruling plus the records confirmed on the same screen.
// Nil record fields keep what is stored.
type DecisionInput struct {
	Acceptance         string
	RiskLevel          string
	Rationale          string
	FinalPremium       *decimal.Decimal
	EffectiveDate      string
	ExpiryDate         string
	Underwriter        string
	Version            int64
	ConfirmZeroPremium bool

	Vehicle     *entities.VehicleRecord
	Owner       *entities.PersonRecord
	Proposer    *entities.PersonRecord
	Insured     *entities.PersonRecord
	Coverages   []entities.CoverageLine
	PaymentLink string
}

type DecisionResult struct {
	Proposal entities.Proposal
	Decision entities.Decision
	Artifact *entities.PaymentArtifact
	Lines    []premium.PricedLine
}

// IDecisionUseCase records the underwriting decision.
//
//   - REJECT => decision + REJECTED in one write, no artifact
//   - ACCEPT => decision + UNDERWRITING_CONFIRMED + payment artifact in one write
type IDecisionUseCase interface {
	Decide(ctx context.Context, proposalID string, in DecisionInput) (DecisionResult, error)
}

type DecisionUseCase struct {
	repo         interfaces.IProposalRepository
	lifecycle    ILifecycleUseCase
	bridge       IPaymentBridgeUseCase
	storeTimeout time.Duration
	log          *logger.Logger
	now          func() time.Time
}

var _ IDecisionUseCase = (*DecisionUseCase)(nil)

func NewDecisionUseCase(repo interfaces.IProposalRepository, lifecycle ILifecycleUseCase, bridge IPaymentBridgeUseCase, storeTimeout time.Duration, log *logger.Logger) *DecisionUseCase {
	return &DecisionUseCase{
		repo:         repo,
		lifecycle:    lifecycle,
		bridge:       bridge,
		storeTimeout: storeTimeout,
		log:          logger.OrNop(log).Component("decision.usecase"),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *DecisionUseCase) Decide(ctx context.Context, proposalID string, in DecisionInput) (res DecisionResult, err error) {
	ctx, span := otel.Tracer("underwriting_service/usecase").Start(ctx, "decision.Decide")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	id := strings.TrimSpace(proposalID)
	if id == "" {
		return DecisionResult{}, ErrInvalidProposalID
	}
	span.SetAttributes(attribute.String("proposal.id", id))

	p, err := loadProposal(ctx, u.repo, u.storeTimeout, id)
	if err != nil {
		return DecisionResult{}, err
	}

	acceptance := entities.Acceptance(strings.ToUpper(strings.TrimSpace(in.Acceptance)))
	target := targetFor(acceptance)
	if p.Status != entities.StatusSubmitted {
		return DecisionResult{}, invalidState(p.Status, target)
	}
	if in.Version > 0 && in.Version != p.Version {
		return DecisionResult{}, ErrVersionConflict
	}

	// A rejection leaves the stored records as they are; only an acceptance confirms edits.
	records, changed := interfaces.RecordsOf(p), false
	if acceptance == entities.AcceptanceAccept {
		records, changed = applyRecords(p, in)
	}
	decision, verr := u.validate(in, acceptance, records)
	if err := verr.orNil(); err != nil {
		return DecisionResult{}, err
	}
	if acceptance == entities.AcceptanceAccept && decision.FinalPremium.IsZero() && !in.ConfirmZeroPremium {
		return DecisionResult{}, ErrZeroPremiumUnconfirmed
	}
	span.SetAttributes(attribute.String("decision.acceptance", string(acceptance)))

	req := AdvanceRequest{
		ProposalID:      id,
		Target:          target,
		Actor:           decision.Underwriter,
		ExpectedVersion: p.Version,
		Decision:        &decision,
	}
	if changed {
		req.Records = &records
	}
	lines, _ := premium.Recompute(records.Coverages)

	if acceptance == entities.AcceptanceReject {
		updated, err := u.lifecycle.Advance(ctx, req)
		if err != nil {
			return DecisionResult{}, err
		}
		u.log.Info("proposal rejected", "proposal_id", id, "underwriter", decision.Underwriter, "risk_level", decision.RiskLevel)
		return DecisionResult{Proposal: updated, Decision: decision, Lines: lines}, nil
	}

	link := firstNonEmpty(strings.TrimSpace(in.PaymentLink), p.PaymentLink)
	for attempt := 1; attempt <= maxMintAttempts; attempt++ {
		artifact, err := u.bridge.Mint(ctx, id, decision.FinalPremium, link)
		if err != nil {
			u.log.Error("artifact mint failed, decision not recorded", "proposal_id", id, "error", err)
			return DecisionResult{}, err
		}
		req.Artifact = &artifact

		updated, err := u.lifecycle.Advance(ctx, req)
		if errors.Is(err, ErrAuthCodeCollision) {
			u.log.Warn("auth code collision, retrying decision", "proposal_id", id, "attempt", attempt)
			continue
		}
		if err != nil {
			return DecisionResult{}, err
		}
		u.log.Info("proposal accepted", "proposal_id", id, "underwriter", decision.Underwriter, "final_premium", decision.FinalPremium.StringFixed(2), "auth_code", artifact.AuthCode)
		return DecisionResult{Proposal: updated, Decision: decision, Artifact: &artifact, Lines: lines}, nil
	}
	return DecisionResult{}, ErrAuthCodeCollision
}

func (u *DecisionUseCase) validate(in DecisionInput, acceptance entities.Acceptance, records interfaces.Records) (entities.Decision, *ValidationError) {
	verr := &ValidationError{}
	d := entities.Decision{
		Acceptance:  acceptance,
		RiskLevel:   entities.RiskLevel(strings.ToUpper(strings.TrimSpace(in.RiskLevel))),
		Rationale:   strings.TrimSpace(in.Rationale),
		Underwriter: strings.TrimSpace(in.Underwriter),
		DecidedAt:   u.now(),
	}

	if !acceptance.Valid() {
		verr.add("acceptance", "must be ACCEPT or REJECT")
	}
	if !d.RiskLevel.Valid() {
		verr.add("riskLevel", "must be LOW, MEDIUM or HIGH")
	}
	if d.Underwriter == "" {
		verr.add("underwriter", "required")
	}
	if in.Version <= 0 {
		verr.add("version", "required")
	}

	switch acceptance {
	case entities.AcceptanceAccept:
		effective, okE := parseDate(verr, "effectiveDate", in.EffectiveDate)
		expiry, okX := parseDate(verr, "expiryDate", in.ExpiryDate)
		if okE && okX {
			if effective.After(expiry) {
				verr.add("expiryDate", "must not be before effectiveDate")
			}
			d.EffectiveDate, d.ExpiryDate = &effective, &expiry
		}
	case entities.AcceptanceReject:
		if d.Rationale == "" {
			verr.add("rationale", "required when rejecting")
		}
	}

	if acceptance == entities.AcceptanceAccept && in.Coverages != nil {
		for _, is := range premium.Validate(in.Coverages) {
			verr.add(is.Field, is.Reason)
		}
	}

	d.FinalPremium = premium.Total(records.Coverages)
	if in.FinalPremium != nil && !in.FinalPremium.Round(premium.Places).Equal(d.FinalPremium) {
		verr.add("finalPremium", "must equal the computed total "+d.FinalPremium.StringFixed(2))
	}
	return d, verr
}

func parseDate(verr *ValidationError, field, raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.add(field, "required when accepting")
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		verr.add(field, "must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

func targetFor(a entities.Acceptance) entities.ProposalStatus {
	switch a {
	case entities.AcceptanceAccept:
		return entities.StatusUnderwritingConfirmed
	case entities.AcceptanceReject:
		return entities.StatusRejected
	}
	return ""
}

// applyRecords overlays the confirmed records of in onto p.
func applyRecords(p entities.Proposal, in DecisionInput) (interfaces.Records, bool) {
	r := interfaces.RecordsOf(p)
	changed := false
	if in.Vehicle != nil {
		r.Vehicle, changed = *in.Vehicle, true
	}
	if in.Owner != nil {
		r.Owner, changed = *in.Owner, true
	}
	if in.Proposer != nil {
		r.Proposer, changed = in.Proposer, true
	}
	if in.Insured != nil {
		r.Insured, changed = in.Insured, true
	}
	if in.Coverages != nil {
		r.Coverages, changed = premium.Normalize(in.Coverages), true
	}
	return r, changed
}
