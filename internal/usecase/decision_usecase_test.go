package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"underwriting_service/internal/domain/entities"
)

func TestDecisionUseCase_Accept(t *testing.T) {
	s := newStack(t, nil)
	p := s.submit(t, "p-1")

	res, err := s.decision.Decide(context.Background(), "p-1", acceptInput(p.Version))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Proposal.Status != entities.StatusUnderwritingConfirmed {
		t.Fatalf("expected UNDERWRITING_CONFIRMED, got %s", res.Proposal.Status)
	}
	if res.Decision.FinalPremium.StringFixed(2) != "1020.00" || res.Decision.EffectiveDate == nil {
		t.Fatalf("unexpected decision: %+v", res.Decision)
	}
	if res.Artifact == nil || len(res.Artifact.AuthCode) != DefaultAuthCodeLength {
		t.Fatalf("expected minted artifact, got %+v", res.Artifact)
	}
	if !strings.HasPrefix(res.Artifact.QRPayload, testPortal+"/pay?t=") {
		t.Fatalf("unexpected qr payload %q", res.Artifact.QRPayload)
	}

	stored, _ := s.store.GetByAuthCode(context.Background(), res.Artifact.AuthCode)
	if stored.ProposalID != "p-1" || !stored.Amount.Equal(res.Decision.FinalPremium) {
		t.Fatalf("artifact not persisted with the decision: %+v", stored)
	}
	if res.Proposal.AuthCode != res.Artifact.AuthCode || len(res.Proposal.Decisions) != 1 {
		t.Fatalf("proposal not linked to artifact: %+v", res.Proposal)
	}
	last := res.Proposal.History[len(res.Proposal.History)-1]
	if last.Actor != "uw-7" || last.To != entities.StatusUnderwritingConfirmed {
		t.Fatalf("unexpected audit entry: %+v", last)
	}
}

func TestDecisionUseCase_Reject(t *testing.T) {
	s := newStack(t, nil)
	p := s.submit(t, "p-1")
	in := DecisionInput{Acceptance: "reject", RiskLevel: "high", Underwriter: "uw-7", Version: p.Version}

	_, err := s.decision.Decide(context.Background(), "p-1", in)
	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) != 1 || verr.Fields[0].Field != "rationale" {
		t.Fatalf("expected rationale validation error, got %v", err)
	}

	in.Rationale = "modified vehicle"
	res, err := s.decision.Decide(context.Background(), "p-1", in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Proposal.Status != entities.StatusRejected || res.Artifact != nil || res.Proposal.AuthCode != "" {
		t.Fatalf("reject must not mint an artifact: %+v", res)
	}
}

func TestDecisionUseCase_RejectKeepsStoredRecords(t *testing.T) {
	s := newStack(t, nil)
	p := s.submit(t, "p-1")

	res, err := s.decision.Decide(context.Background(), "p-1", DecisionInput{
		Acceptance:  "REJECT",
		RiskLevel:   "HIGH",
		Rationale:   "salvage title",
		Underwriter: "uw-7",
		Version:     p.Version,
		Vehicle:     &entities.VehicleRecord{Plate: "A0000"},
		Coverages:   []entities.CoverageLine{{Code: "X", Name: "Other", BasePremium: money("5")}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Decision.FinalPremium.StringFixed(2) != "1020.00" {
		t.Fatalf("final premium must come from the stored lines, got %s", res.Decision.FinalPremium)
	}

	cur, _ := s.store.GetByID(context.Background(), "p-1")
	if cur.Status != entities.StatusRejected || len(cur.Coverages) != 2 || cur.Coverages[0].Code != "TPL" {
		t.Fatalf("reject must not rewrite coverages: %+v", cur.Coverages)
	}
	if cur.Vehicle.Plate != p.Vehicle.Plate {
		t.Fatalf("reject must not rewrite the vehicle, got %q", cur.Vehicle.Plate)
	}
}

func TestDecisionUseCase_RequiresVersion(t *testing.T) {
	s := newStack(t, nil)
	p := s.submit(t, "p-1")
	if _, err := s.proposals.AddCoverage(context.Background(), "p-1", p.Version, entities.CoverageLine{Code: "GLS", Name: "Glass", BasePremium: money("99")}); err != nil {
		t.Fatalf("add coverage: %v", err)
	}

	in := acceptInput(0)
	in.FinalPremium = nil
	_, err := s.decision.Decide(context.Background(), "p-1", in)
	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) != 1 || verr.Fields[0].Field != "version" {
		t.Fatalf("expected version validation error, got %v", err)
	}

	if _, err := s.decision.Decide(context.Background(), "p-1", acceptInput(p.Version)); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict for the pre-edit version, got %v", err)
	}
	cur, _ := s.store.GetByID(context.Background(), "p-1")
	if cur.Status != entities.StatusSubmitted || len(cur.Decisions) != 0 {
		t.Fatalf("unstamped decision must not write: %+v", cur)
	}
}

func TestDecisionUseCase_Validation(t *testing.T) {
	s := newStack(t, nil)
	p := s.submit(t, "p-1")

	t.Run("collects every field", func(t *testing.T) {
		_, err := s.decision.Decide(context.Background(), "p-1", DecisionInput{
			Acceptance:    "ACCEPT",
			RiskLevel:     "EXTREME",
			EffectiveDate: "2026-04-01",
			ExpiryDate:    "03/01/2027",
			Version:       p.Version,
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		got := map[string]bool{}
		for _, f := range verr.Fields {
			got[f.Field] = true
		}
		for _, want := range []string{"riskLevel", "underwriter", "expiryDate"} {
			if !got[want] {
				t.Fatalf("missing %s in %+v", want, verr.Fields)
			}
		}
	})

	t.Run("expiry before effective", func(t *testing.T) {
		in := acceptInput(p.Version)
		in.EffectiveDate, in.ExpiryDate = "2027-03-02", "2027-03-01"
		if _, err := s.decision.Decide(context.Background(), "p-1", in); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("final premium must match the computed total", func(t *testing.T) {
		in := acceptInput(p.Version)
		in.FinalPremium = ptrMoney("999.99")
		_, err := s.decision.Decide(context.Background(), "p-1", in)
		if !errors.Is(err, ErrValidation) || !strings.Contains(err.Error(), "1020.00") {
			t.Fatalf("expected finalPremium mismatch, got %v", err)
		}
	})

	t.Run("stale version", func(t *testing.T) {
		if _, err := s.decision.Decide(context.Background(), "p-1", acceptInput(p.Version+1)); !errors.Is(err, ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	cur, _ := s.store.GetByID(context.Background(), "p-1")
	if cur.Status != entities.StatusSubmitted || len(cur.Decisions) != 0 {
		t.Fatalf("failed decisions must not write: %+v", cur)
	}
}

func TestDecisionUseCase_ConfirmedRecordsAndZeroPremium(t *testing.T) {
	s := newStack(t, nil)
	p := s.submit(t, "p-1")

	in := acceptInput(p.Version)
	in.FinalPremium = nil
	in.Coverages = []entities.CoverageLine{{Code: "TPL", Name: "Third party liability", BasePremium: money("0")}}
	if _, err := s.decision.Decide(context.Background(), "p-1", in); !errors.Is(err, ErrZeroPremiumUnconfirmed) {
		t.Fatalf("expected ErrZeroPremiumUnconfirmed, got %v", err)
	}

	in.ConfirmZeroPremium = true
	in.Owner = &entities.PersonRecord{Name: "Li Wei (confirmed)"}
	res, err := s.decision.Decide(context.Background(), "p-1", in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Decision.FinalPremium.IsZero() || len(res.Proposal.Coverages) != 1 || res.Proposal.Owner.Name != "Li Wei (confirmed)" {
		t.Fatalf("confirmed records not committed with the decision: %+v", res.Proposal)
	}
	if !res.Proposal.Coverages[0].Rate.Equal(entities.DefaultRate) {
		t.Fatalf("expected default rate, got %s", res.Proposal.Coverages[0].Rate)
	}
}

func TestDecisionUseCase_OnlyFromSubmitted(t *testing.T) {
	s := newStack(t, nil)
	res := s.accept(t, "p-1")

	_, err := s.decision.Decide(context.Background(), "p-1", acceptInput(res.Proposal.Version))
	var te *TransitionError
	if !errors.Is(err, ErrInvalidState) || !errors.As(err, &te) || te.Current != entities.StatusUnderwritingConfirmed {
		t.Fatalf("expected invalid state from UNDERWRITING_CONFIRMED, got %v", err)
	}
}

func TestDecisionUseCase_RetriesAuthCodeCollision(t *testing.T) {
	s := newStack(t, nil)
	s.bridge.newCode = func() (string, error) { return "AAAAAA", nil }
	s.accept(t, "p-1")

	codes := []string{"AAAAAA", "AAAAAA", "BBBBBB"}
	s.bridge.newCode = func() (string, error) {
		c := codes[0]
		codes = codes[1:]
		return c, nil
	}
	p := s.submit(t, "p-2")
	res, err := s.decision.Decide(context.Background(), "p-2", acceptInput(p.Version))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Artifact.AuthCode != "BBBBBB" || len(codes) != 0 {
		t.Fatalf("expected third code, got %s", res.Artifact.AuthCode)
	}

	s.bridge.newCode = func() (string, error) { return "AAAAAA", nil }
	p3 := s.submit(t, "p-3")
	if _, err := s.decision.Decide(context.Background(), "p-3", acceptInput(p3.Version)); !errors.Is(err, ErrAuthCodeCollision) {
		t.Fatalf("expected ErrAuthCodeCollision after retries, got %v", err)
	}
	cur, _ := s.store.GetByID(context.Background(), "p-3")
	if cur.Status != entities.StatusSubmitted {
		t.Fatalf("collision must leave the proposal untouched, got %s", cur.Status)
	}
}

func TestDecisionUseCase_ConcurrentDecisionsOneWins(t *testing.T) {
	s := newStack(t, nil)
	p := s.submit(t, "p-1")

	inputs := []DecisionInput{acceptInput(p.Version), acceptInput(p.Version), {
		Acceptance:  "REJECT",
		RiskLevel:   "HIGH",
		Rationale:   "fraud suspicion",
		Underwriter: "uw-9",
		Version:     p.Version,
	}}
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		wins     int
		rejected int
	)
	for _, in := range inputs {
		wg.Add(1)
		go func(in DecisionInput) {
			defer wg.Done()
			_, err := s.decision.Decide(context.Background(), "p-1", in)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, ErrInvalidState), errors.Is(err, ErrVersionConflict):
				rejected++
			default:
				t.Errorf("unexpected err: %v", err)
			}
		}(in)
	}
	wg.Wait()

	if wins != 1 || rejected != len(inputs)-1 {
		t.Fatalf("expected exactly one winner, got wins=%d rejected=%d", wins, rejected)
	}
	cur, _ := s.store.GetByID(context.Background(), "p-1")
	if len(cur.Decisions) != 1 {
		t.Fatalf("expected one decision, got %d", len(cur.Decisions))
	}
}
