package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/domain/premium"
	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActorCustomer is recorded in history when the customer's authentication moves the
// proposal to PAID.
const ActorCustomer = "customer"

// Log events for refused artifacts. Reuse covers consumed, invalidated and mismatched
// artifacts; unknown covers codes that match nothing.
const (
	eventArtifactReuse   = "security.artifact_reuse"
	eventArtifactUnknown = "security.artifact_unknown"
)

const (
	ProductNameNewEnergy = "中国人寿财险新能源汽车商业保险"
	ProductNameMotor     = "中国人寿财险机动车商业保险"
)

// PaymentLinkRequest asks for a collection URL. With a ProposalID the product name and
// amount default from the proposal, and the link is stored on it.
type PaymentLinkRequest struct {
	ProposalID  string
	ProductName string
	Amount      *decimal.Decimal
}

type PaymentLinkResult struct {
	Link        string
	ProductName string
	Amount      decimal.Decimal
}

type ConsumeResult struct {
	Artifact entities.PaymentArtifact
	Proposal entities.Proposal
}

// PaymentStatusView is what the customer portal sees after opening the QR link.
type PaymentStatusView struct {
	ProposalID  string
	Status      entities.ProposalStatus
	Amount      decimal.Decimal
	PaymentLink string
	Consumed    bool
	ExpiresAt   time.Time
}

// IPaymentBridgeUseCase connects an accepted decision to payment collection.
//
//   - decision usecase => Mint() (persisted by the decision transition)
//   - POST /payments/consume => Consume()
//   - GET /payments/status => ResolveToken()
//   - POST /payments/link => GeneratePaymentLink()
//   - GET /proposals/{id}/artifact/qr.png => QRCode()
type IPaymentBridgeUseCase interface {
	Mint(ctx context.Context, proposalID string, amount decimal.Decimal, collectionLink string) (entities.PaymentArtifact, error)
	Consume(ctx context.Context, authCode string) (ConsumeResult, error)
	ResolveToken(ctx context.Context, token string) (PaymentStatusView, error)
	GeneratePaymentLink(ctx context.Context, req PaymentLinkRequest) (PaymentLinkResult, error)
	QRCode(ctx context.Context, proposalID string) ([]byte, error)
}

type PaymentBridgeOptions struct {
	PortalURL      string
	TokenTTL       time.Duration
	AuthCodeLength int
	StoreTimeout   time.Duration
	LinkTimeout    time.Duration
}

type PaymentBridgeUseCase struct {
	proposals interfaces.IProposalRepository
	artifacts interfaces.IPaymentArtifactRepository
	lifecycle ILifecycleUseCase
	tokens    interfaces.ICapabilityTokens
	qr        interfaces.IQREncoder
	links     interfaces.IPaymentLinkProvider
	opts      PaymentBridgeOptions
	log       *logger.Logger

	now     func() time.Time
	newCode func() (string, error)
}

var _ IPaymentBridgeUseCase = (*PaymentBridgeUseCase)(nil)

func NewPaymentBridgeUseCase(
	proposals interfaces.IProposalRepository,
	artifacts interfaces.IPaymentArtifactRepository,
	lifecycle ILifecycleUseCase,
	tokens interfaces.ICapabilityTokens,
	qr interfaces.IQREncoder,
	links interfaces.IPaymentLinkProvider,
	opts PaymentBridgeOptions,
	log *logger.Logger,
) *PaymentBridgeUseCase {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 72 * time.Hour
	}
	length := opts.AuthCodeLength
	return &PaymentBridgeUseCase{
		proposals: proposals,
		artifacts: artifacts,
		lifecycle: lifecycle,
		tokens:    tokens,
		qr:        qr,
		links:     links,
		opts:      opts,
		log:       logger.OrNop(log).Component("payment.bridge"),
		now:       func() time.Time { return time.Now().UTC() },
		newCode:   func() (string, error) { return newAuthCode(length) },
	}
}

// Mint generates a fresh artifact. Nothing is written here: the artifact is persisted by
// the ACCEPT transition that carries it.
func (u *PaymentBridgeUseCase) Mint(ctx context.Context, proposalID string, amount decimal.Decimal, collectionLink string) (entities.PaymentArtifact, error) {
	if u.tokens == nil {
		return entities.PaymentArtifact{}, errors.New("capability token signer not configured")
	}
	code, err := u.newCode()
	if err != nil {
		return entities.PaymentArtifact{}, fmt.Errorf("generate auth code: %w", err)
	}

	at := u.now()
	a := entities.PaymentArtifact{
		ID:             uuid.NewString(),
		ProposalID:     proposalID,
		AuthCode:       code,
		Amount:         amount.Round(premium.Places),
		CollectionLink: collectionLink,
		IssuedAt:       at,
	}
	token, err := u.tokens.Issue(interfaces.CapabilityClaims{
		ProposalID: proposalID,
		ArtifactID: a.ID,
		Amount:     a.Amount,
		IssuedAt:   at,
		ExpiresAt:  at.Add(u.opts.TokenTTL),
	})
	if err != nil {
		return entities.PaymentArtifact{}, fmt.Errorf("sign capability token: %w", err)
	}
	a.QRPayload = paymentURL(u.opts.PortalURL, token)
	return a, nil
}

// Consume authenticates the customer's code exactly once and moves the proposal to PAID.
//
// The compare-and-swap on consumed_at is the commit point. A failure of the following
// lifecycle advance is returned with the consumed artifact so the operator can finish
// the step with UpdateLifecycle(PAID).
func (u *PaymentBridgeUseCase) Consume(ctx context.Context, authCode string) (ConsumeResult, error) {
	code := NormalizeAuthCode(authCode)
	if code == "" {
		return ConsumeResult{}, ErrArtifactNotFound
	}

	sctx, cancel := withStoreTimeout(ctx, u.opts.StoreTimeout)
	a, err := u.artifacts.Consume(sctx, code, u.now())
	cancel()
	switch {
	case errors.Is(err, interfaces.ErrConditionFailed):
		reason := ErrArtifactAlreadyConsumed
		if a.InvalidatedAt != nil {
			reason = ErrArtifactInvalidated
		}
		u.log.Warn("artifact rejected", "event", eventArtifactReuse, "auth_code", code, "proposal_id", a.ProposalID, "reason", reason.Error())
		return ConsumeResult{}, reason
	case err != nil:
		return ConsumeResult{}, storeErr(err)
	case a.AuthCode == "":
		u.log.Warn("artifact unknown", "event", eventArtifactUnknown, "auth_code", code)
		return ConsumeResult{}, ErrArtifactNotFound
	}
	u.log.Info("artifact consumed", "auth_code", code, "proposal_id", a.ProposalID)

	p, err := loadProposal(ctx, u.proposals, u.opts.StoreTimeout, a.ProposalID)
	if err == nil && p.Status == entities.StatusUnderwritingConfirmed {
		p, err = u.lifecycle.MarkPaid(ctx, a.ProposalID, ActorCustomer)
	}
	if err != nil {
		u.log.Error("artifact consumed but proposal not advanced to PAID", "proposal_id", a.ProposalID, "error", err)
		return ConsumeResult{Artifact: a}, fmt.Errorf("advance to PAID after consumption: %w", err)
	}
	return ConsumeResult{Artifact: a, Proposal: p}, nil
}

func (u *PaymentBridgeUseCase) ResolveToken(ctx context.Context, token string) (PaymentStatusView, error) {
	token = strings.TrimSpace(token)
	if token == "" || u.tokens == nil {
		return PaymentStatusView{}, ErrInvalidPaymentToken
	}
	claims, err := u.tokens.Verify(token)
	if err != nil {
		return PaymentStatusView{}, fmt.Errorf("%w: %v", ErrInvalidPaymentToken, err)
	}

	a, err := u.liveArtifact(ctx, claims.ProposalID)
	if errors.Is(err, ErrArtifactNotFound) {
		return PaymentStatusView{}, ErrInvalidPaymentToken
	}
	if err != nil {
		return PaymentStatusView{}, err
	}
	if a.ID != claims.ArtifactID {
		u.log.Warn("token does not match live artifact", "event", eventArtifactReuse, "proposal_id", claims.ProposalID)
		return PaymentStatusView{}, ErrInvalidPaymentToken
	}
	if a.InvalidatedAt != nil {
		return PaymentStatusView{}, ErrArtifactInvalidated
	}

	p, err := loadProposal(ctx, u.proposals, u.opts.StoreTimeout, claims.ProposalID)
	if err != nil {
		return PaymentStatusView{}, err
	}
	return PaymentStatusView{
		ProposalID:  p.ID,
		Status:      p.Status,
		Amount:      a.Amount,
		PaymentLink: a.CollectionLink,
		Consumed:    a.ConsumedAt != nil,
		ExpiresAt:   claims.ExpiresAt,
	}, nil
}

// GeneratePaymentLink asks the provider for a collection URL. Provider failures surface
// as ErrPaymentLinkUpstream and never touch the decision.
func (u *PaymentBridgeUseCase) GeneratePaymentLink(ctx context.Context, req PaymentLinkRequest) (PaymentLinkResult, error) {
	id := strings.TrimSpace(req.ProposalID)
	productName := strings.TrimSpace(req.ProductName)

	var (
		p        entities.Proposal
		artifact entities.PaymentArtifact
		amount   decimal.Decimal
		err      error
	)
	if req.Amount != nil {
		amount = req.Amount.Round(premium.Places)
	}

	if id != "" {
		p, err = loadProposal(ctx, u.proposals, u.opts.StoreTimeout, id)
		if err != nil {
			return PaymentLinkResult{}, err
		}
		if productName == "" {
			productName = ProductNameFor(p.Vehicle)
		}
		switch p.Status {
		case entities.StatusSubmitted:
			if req.Amount == nil {
				amount = premium.Total(p.Coverages)
			}
		case entities.StatusUnderwritingConfirmed:
			artifact, err = u.liveArtifact(ctx, id)
			if err != nil {
				return PaymentLinkResult{}, err
			}
			if req.Amount == nil {
				amount = artifact.Amount
			} else if !amount.Equal(artifact.Amount) {
				return PaymentLinkResult{}, &ValidationError{Fields: []FieldError{{Field: "amount", Reason: "must equal the accepted final premium " + artifact.Amount.StringFixed(2)}}}
			}
		default:
			return PaymentLinkResult{}, invalidState(p.Status, "")
		}
	}

	verr := &ValidationError{}
	if productName == "" {
		verr.add("productName", "required")
	}
	if !amount.IsPositive() {
		verr.add("amount", "must be > 0")
	}
	if err := verr.orNil(); err != nil {
		return PaymentLinkResult{}, err
	}
	if u.links == nil {
		return PaymentLinkResult{}, ErrPaymentLinkUnavailable
	}

	lctx, cancel := withStoreTimeout(ctx, u.opts.LinkTimeout)
	link, err := u.links.GenerateLink(lctx, productName, amount)
	cancel()
	if err != nil {
		u.log.Error("payment link provider failed", "proposal_id", id, "error", err)
		return PaymentLinkResult{}, fmt.Errorf("%w: %v", ErrPaymentLinkUpstream, err)
	}
	if strings.TrimSpace(link) == "" {
		return PaymentLinkResult{}, fmt.Errorf("%w: empty payment link", ErrPaymentLinkUpstream)
	}

	if id != "" {
		if err := u.storeLink(ctx, p, artifact, link); err != nil {
			return PaymentLinkResult{}, err
		}
	}
	u.log.Info("payment link generated", "proposal_id", id, "amount", amount.StringFixed(2))
	return PaymentLinkResult{Link: link, ProductName: productName, Amount: amount}, nil
}

func (u *PaymentBridgeUseCase) storeLink(ctx context.Context, p entities.Proposal, artifact entities.PaymentArtifact, link string) error {
	sctx, cancel := withStoreTimeout(ctx, u.opts.StoreTimeout)
	defer cancel()

	var (
		stored string
		err    error
	)
	if artifact.AuthCode != "" {
		var a entities.PaymentArtifact
		a, err = u.artifacts.SetCollectionLink(sctx, artifact.AuthCode, link)
		stored = a.AuthCode
	} else {
		var updated entities.Proposal
		updated, err = u.proposals.SetPaymentLink(sctx, p.ID, link, u.now())
		stored = updated.ID
	}
	if errors.Is(err, interfaces.ErrConditionFailed) {
		cur, lerr := loadProposal(ctx, u.proposals, u.opts.StoreTimeout, p.ID)
		if lerr != nil {
			return lerr
		}
		return invalidState(cur.Status, "")
	}
	if err != nil {
		return storeErr(err)
	}
	if stored == "" {
		return ErrProposalNotFound
	}
	return nil
}

func (u *PaymentBridgeUseCase) QRCode(ctx context.Context, proposalID string) ([]byte, error) {
	id := strings.TrimSpace(proposalID)
	if id == "" {
		return nil, ErrInvalidProposalID
	}
	a, err := u.liveArtifact(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.InvalidatedAt != nil {
		return nil, ErrArtifactInvalidated
	}
	if u.qr == nil {
		return nil, errors.New("qr encoder not configured")
	}
	return u.qr.Encode(a.QRPayload)
}

func (u *PaymentBridgeUseCase) liveArtifact(ctx context.Context, proposalID string) (entities.PaymentArtifact, error) {
	sctx, cancel := withStoreTimeout(ctx, u.opts.StoreTimeout)
	defer cancel()
	a, err := u.artifacts.GetByProposalID(sctx, proposalID)
	if err != nil {
		return entities.PaymentArtifact{}, storeErr(err)
	}
	if a.AuthCode == "" {
		return entities.PaymentArtifact{}, ErrArtifactNotFound
	}
	return a, nil
}

// ProductNameFor picks the commercial product from the vehicle energy type.
func ProductNameFor(v entities.VehicleRecord) string {
	energy := strings.ToLower(strings.TrimSpace(v.EnergyType))
	if energy == "" {
		return ProductNameMotor
	}
	for _, kw := range []string{"电", "混合", "新能源", "new", "ev", "hybrid", "electric"} {
		if strings.Contains(energy, kw) {
			return ProductNameNewEnergy
		}
	}
	return ProductNameMotor
}

func paymentURL(portal, token string) string {
	return strings.TrimRight(portal, "/") + "/pay?t=" + url.QueryEscape(token)
}
