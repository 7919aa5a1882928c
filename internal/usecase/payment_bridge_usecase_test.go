package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/internal/infrastructure/payments"
	"underwriting_service/internal/usecase/interfaces"
	mock_interfaces "underwriting_service/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func tokenOf(t *testing.T, a *entities.PaymentArtifact) string {
	t.Helper()
	u, err := url.Parse(a.QRPayload)
	if err != nil {
		t.Fatalf("qr payload: %v", err)
	}
	return u.Query().Get("t")
}

func TestPaymentBridge_Consume(t *testing.T) {
	s := newStack(t, nil)
	res := s.accept(t, "p-1")
	ctx := context.Background()

	out, err := s.bridge.Consume(ctx, strings.ToLower(" "+res.Artifact.AuthCode+" "))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Proposal.Status != entities.StatusPaid || out.Artifact.ConsumedAt == nil {
		t.Fatalf("expected PAID with consumed artifact, got %+v", out)
	}
	last := out.Proposal.History[len(out.Proposal.History)-1]
	if last.Actor != ActorCustomer {
		t.Fatalf("expected customer actor, got %q", last.Actor)
	}

	if _, err := s.bridge.Consume(ctx, res.Artifact.AuthCode); !errors.Is(err, ErrArtifactAlreadyConsumed) {
		t.Fatalf("expected ErrArtifactAlreadyConsumed, got %v", err)
	}
	if _, err := s.bridge.Consume(ctx, "ZZZZZZ"); !errors.Is(err, ErrArtifactNotFound) {
		t.Fatalf("expected ErrArtifactNotFound, got %v", err)
	}
	if _, err := s.bridge.Consume(ctx, "  "); !errors.Is(err, ErrArtifactNotFound) {
		t.Fatalf("expected ErrArtifactNotFound for empty code, got %v", err)
	}
}

func TestPaymentBridge_ConsumeLogsRefusalsByKind(t *testing.T) {
	s := newStack(t, nil)
	res := s.accept(t, "p-1")
	core, logs := observer.New(zap.WarnLevel)
	s.bridge.log = logger.Wrap(zap.New(core), "salt")
	ctx := context.Background()

	if _, err := s.bridge.Consume(ctx, res.Artifact.AuthCode); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, _ = s.bridge.Consume(ctx, res.Artifact.AuthCode)
	_, _ = s.bridge.Consume(ctx, "ZZZZZZ")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["event"]; got != eventArtifactReuse {
		t.Fatalf("expected reuse event for a consumed code, got %v", got)
	}
	if got := entries[1].ContextMap()["event"]; got != eventArtifactUnknown {
		t.Fatalf("expected unknown event for an unmatched code, got %v", got)
	}
}

func TestPaymentBridge_ConsumeIsSingleUse(t *testing.T) {
	s := newStack(t, nil)
	res := s.accept(t, "p-1")

	const n = 12
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.bridge.Consume(context.Background(), res.Artifact.AuthCode)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
			} else if !errors.Is(err, ErrArtifactAlreadyConsumed) {
				t.Errorf("unexpected err: %v", err)
			}
		}()
	}
	wg.Wait()
	if wins != 1 {
		t.Fatalf("expected exactly one successful consume, got %d", wins)
	}
}

func TestPaymentBridge_ConsumeInvalidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mock_interfaces.NewMockIPaymentArtifactRepository(ctrl)
	uc := NewPaymentBridgeUseCase(nil, artifacts, nil, nil, nil, nil, PaymentBridgeOptions{}, nil)

	at := time.Now()
	artifacts.EXPECT().Consume(gomock.Any(), "K7P2QX", gomock.Any()).
		Return(entities.PaymentArtifact{AuthCode: "K7P2QX", ProposalID: "p-1", InvalidatedAt: &at}, interfaces.ErrConditionFailed)

	if _, err := uc.Consume(context.Background(), "k7p2qx"); !errors.Is(err, ErrArtifactInvalidated) {
		t.Fatalf("expected ErrArtifactInvalidated, got %v", err)
	}
}

func TestPaymentBridge_ResolveToken(t *testing.T) {
	s := newStack(t, nil)
	res := s.accept(t, "p-1")
	ctx := context.Background()
	token := tokenOf(t, res.Artifact)

	view, err := s.bridge.ResolveToken(ctx, token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if view.ProposalID != "p-1" || view.Status != entities.StatusUnderwritingConfirmed || view.Consumed || view.Amount.StringFixed(2) != "1020.00" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.ExpiresAt.Sub(res.Artifact.IssuedAt) < 71*time.Hour {
		t.Fatalf("expected default ttl, expires at %s", view.ExpiresAt)
	}

	if _, err := s.bridge.ResolveToken(ctx, "not-a-jwt"); !errors.Is(err, ErrInvalidPaymentToken) {
		t.Fatalf("expected ErrInvalidPaymentToken, got %v", err)
	}

	if _, err := s.bridge.Consume(ctx, res.Artifact.AuthCode); err != nil {
		t.Fatalf("consume: %v", err)
	}
	view, err = s.bridge.ResolveToken(ctx, token)
	if err != nil || !view.Consumed || view.Status != entities.StatusPaid {
		t.Fatalf("expected consumed view, got %+v err=%v", view, err)
	}
}

func TestPaymentBridge_ResolveTokenForForeignArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mock_interfaces.NewMockIPaymentArtifactRepository(ctrl)
	tokens := mock_interfaces.NewMockICapabilityTokens(ctrl)
	uc := NewPaymentBridgeUseCase(nil, artifacts, nil, tokens, nil, nil, PaymentBridgeOptions{}, nil)

	tokens.EXPECT().Verify("tok").Return(interfaces.CapabilityClaims{ProposalID: "p-1", ArtifactID: "old-artifact"}, nil)
	artifacts.EXPECT().GetByProposalID(gomock.Any(), "p-1").Return(entities.PaymentArtifact{ID: "live-artifact", AuthCode: "K7P2QX"}, nil)

	if _, err := uc.ResolveToken(context.Background(), "tok"); !errors.Is(err, ErrInvalidPaymentToken) {
		t.Fatalf("expected ErrInvalidPaymentToken, got %v", err)
	}
}

func TestPaymentBridge_GeneratePaymentLink(t *testing.T) {
	ctx := context.Background()

	t.Run("submitted defaults to computed total and stores on proposal", func(t *testing.T) {
		s := newStack(t, payments.MockLinkProvider{})
		s.submit(t, "p-1")

		out, err := s.bridge.GeneratePaymentLink(ctx, PaymentLinkRequest{ProposalID: "p-1"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.Amount.StringFixed(2) != "1020.00" || out.ProductName != ProductNameNewEnergy {
			t.Fatalf("unexpected result: %+v", out)
		}
		p, _ := s.store.GetByID(ctx, "p-1")
		if p.PaymentLink != out.Link {
			t.Fatalf("link not stored verbatim on proposal")
		}

		res, err := s.decision.Decide(ctx, "p-1", acceptInput(p.Version))
		if err != nil {
			t.Fatalf("decide: %v", err)
		}
		if res.Artifact.CollectionLink != out.Link {
			t.Fatalf("captured link must carry into the artifact, got %q", res.Artifact.CollectionLink)
		}
	})

	t.Run("confirmed amount must equal final premium", func(t *testing.T) {
		s := newStack(t, payments.MockLinkProvider{})
		res := s.accept(t, "p-1")

		if _, err := s.bridge.GeneratePaymentLink(ctx, PaymentLinkRequest{ProposalID: "p-1", Amount: ptrMoney("1000")}); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		out, err := s.bridge.GeneratePaymentLink(ctx, PaymentLinkRequest{ProposalID: "p-1", ProductName: "custom"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		a, _ := s.store.GetByAuthCode(ctx, res.Artifact.AuthCode)
		if a.CollectionLink != out.Link || out.ProductName != "custom" {
			t.Fatalf("link not stored on artifact: %+v", a)
		}
	})

	t.Run("paid proposal", func(t *testing.T) {
		s := newStack(t, payments.MockLinkProvider{})
		res := s.accept(t, "p-1")
		if _, err := s.bridge.Consume(ctx, res.Artifact.AuthCode); err != nil {
			t.Fatalf("consume: %v", err)
		}
		if _, err := s.bridge.GeneratePaymentLink(ctx, PaymentLinkRequest{ProposalID: "p-1"}); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("standalone request validation", func(t *testing.T) {
		s := newStack(t, payments.MockLinkProvider{})
		_, err := s.bridge.GeneratePaymentLink(ctx, PaymentLinkRequest{Amount: ptrMoney("0")})
		var verr *ValidationError
		if !errors.As(err, &verr) || len(verr.Fields) != 2 {
			t.Fatalf("expected productName and amount errors, got %v", err)
		}
	})

	t.Run("provider not configured", func(t *testing.T) {
		s := newStack(t, nil)
		_, err := s.bridge.GeneratePaymentLink(ctx, PaymentLinkRequest{ProductName: "motor", Amount: ptrMoney("10")})
		if !errors.Is(err, ErrPaymentLinkUnavailable) {
			t.Fatalf("expected ErrPaymentLinkUnavailable, got %v", err)
		}
	})

	t.Run("provider failure leaves the proposal untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		links := mock_interfaces.NewMockIPaymentLinkProvider(ctrl)
		s := newStack(t, links)
		p := s.submit(t, "p-1")

		links.EXPECT().GenerateLink(gomock.Any(), ProductNameNewEnergy, gomock.AssignableToTypeOf(decimal.Decimal{})).Return("", errors.New("worker down"))

		if _, err := s.bridge.GeneratePaymentLink(ctx, PaymentLinkRequest{ProposalID: "p-1"}); !errors.Is(err, ErrPaymentLinkUpstream) {
			t.Fatalf("expected ErrPaymentLinkUpstream, got %v", err)
		}
		cur, _ := s.store.GetByID(ctx, "p-1")
		if cur.Version != p.Version || cur.PaymentLink != "" {
			t.Fatalf("failed provider call must not write: %+v", cur)
		}
	})
}

func TestPaymentBridge_QRCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	qr := mock_interfaces.NewMockIQREncoder(ctrl)
	s := newStack(t, nil)
	s.bridge.qr = qr
	res := s.accept(t, "p-1")

	qr.EXPECT().Encode(res.Artifact.QRPayload).Return([]byte("png"), nil)

	png, err := s.bridge.QRCode(context.Background(), "p-1")
	if err != nil || string(png) != "png" {
		t.Fatalf("unexpected qr %q err=%v", png, err)
	}

	s.submit(t, "p-2")
	if _, err := s.bridge.QRCode(context.Background(), "p-2"); !errors.Is(err, ErrArtifactNotFound) {
		t.Fatalf("expected ErrArtifactNotFound, got %v", err)
	}
}

func TestProductNameFor(t *testing.T) {
	cases := map[string]string{
		"":            ProductNameMotor,
		"汽油":          ProductNameMotor,
		"纯电动":         ProductNameNewEnergy,
		"插电式混合动力":     ProductNameNewEnergy,
		"Electric":    ProductNameNewEnergy,
		"diesel":      ProductNameMotor,
		" Hybrid EV ": ProductNameNewEnergy,
	}
	for energy, want := range cases {
		if got := ProductNameFor(entities.VehicleRecord{EnergyType: energy}); got != want {
			t.Fatalf("ProductNameFor(%q) = %s, want %s", energy, got, want)
		}
	}
}

func TestNewAuthCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code, err := newAuthCode(0)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(code) != DefaultAuthCodeLength {
			t.Fatalf("unexpected length %d", len(code))
		}
		for _, r := range code {
			if !strings.ContainsRune(authCodeAlphabet, r) {
				t.Fatalf("code %q has ambiguous character %q", code, r)
			}
		}
		seen[code] = true
	}
	if len(seen) < 190 {
		t.Fatalf("codes are not random enough: %d distinct", len(seen))
	}
}
