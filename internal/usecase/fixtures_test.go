package usecase

import (
	"context"
	"testing"
	"time"

	"underwriting_service/internal/adapter/persistence/repository"
	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/infrastructure/payments"
	"underwriting_service/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const testPortal = "https://portal.example"

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptrMoney(s string) *decimal.Decimal {
	d := money(s)
	return &d
}

// stack is the full usecase graph over one in-memory store.
type stack struct {
	store     *repository.MemoryStore
	lifecycle *LifecycleUseCase
	bridge    *PaymentBridgeUseCase
	decision  *DecisionUseCase
	proposals *ProposalUseCase
}

func newStack(t *testing.T, links interfaces.IPaymentLinkProvider) *stack {
	t.Helper()
	store := repository.NewMemoryStore()
	tokens, err := payments.NewJWTCapabilityTokens("test-secret")
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	lc := NewLifecycleUseCase(store, LifecycleOptions{StoreTimeout: time.Second}, nil)
	bridge := NewPaymentBridgeUseCase(store, store, lc, tokens, payments.QREncoder{}, links, PaymentBridgeOptions{
		PortalURL:    testPortal,
		StoreTimeout: time.Second,
		LinkTimeout:  time.Second,
	}, nil)
	return &stack{
		store:     store,
		lifecycle: lc,
		bridge:    bridge,
		decision:  NewDecisionUseCase(store, lc, bridge, time.Second, nil),
		proposals: NewProposalUseCase(store, store, time.Second, nil),
	}
}

func sampleInput(id string) CreateProposalInput {
	return CreateProposalInput{
		ID: id,
		Vehicle: entities.VehicleRecord{
			Plate:       "粤B12345",
			VIN:         "LSVAU2180N2183294",
			BrandModel:  "BYD Han EV",
			VehicleType: "sedan",
			EnergyType:  "纯电动",
		},
		Owner: entities.PersonRecord{Name: "Li Wei", IDType: "ID_CARD", IDNumber: "440301199001011234", Mobile: "13800138000"},
		Coverages: []entities.CoverageLine{
			{Code: "TPL", Name: "Third party liability", SumInsured: money("1000000"), BasePremium: money("800"), Rate: money("1.0")},
			{Code: "DMG", Name: "Vehicle damage", SumInsured: money("200000"), BasePremium: money("200"), Rate: money("1.1")},
		},
	}
}

func (s *stack) submit(t *testing.T, id string) entities.Proposal {
	t.Helper()
	d, err := s.proposals.Create(context.Background(), sampleInput(id))
	if err != nil {
		t.Fatalf("create %s: %v", id, err)
	}
	return d.Proposal
}

func acceptInput(version int64) DecisionInput {
	return DecisionInput{
		Acceptance:    "ACCEPT",
		RiskLevel:     "LOW",
		FinalPremium:  ptrMoney("1020.00"),
		EffectiveDate: "2026-03-02",
		ExpiryDate:    "2027-03-01",
		Underwriter:   "uw-7",
		Version:       version,
	}
}

func (s *stack) accept(t *testing.T, id string) DecisionResult {
	t.Helper()
	p := s.submit(t, id)
	res, err := s.decision.Decide(context.Background(), id, acceptInput(p.Version))
	if err != nil {
		t.Fatalf("accept %s: %v", id, err)
	}
	return res
}
