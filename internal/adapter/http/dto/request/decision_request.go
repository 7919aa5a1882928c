package request

import (
	"strings"

	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/usecase"

	"github.com/shopspring/decimal"
)

// DecisionRequest is the underwriting screen submit. Vehicle, persons and coverages are
// the records the operator confirmed on that screen; omitted sections keep what is stored.
type DecisionRequest struct {
	Acceptance         string            `json:"acceptance" binding:"required"`
	RiskLevel          string            `json:"riskLevel"`
	Rationale          string            `json:"rationale"`
	RiskReason         string            `json:"riskReason"`
	FinalPremium       *decimal.Decimal  `json:"finalPremium"`
	EffectiveDate      string            `json:"effectiveDate"`
	ExpiryDate         string            `json:"expiryDate"`
	Underwriter        string            `json:"underwriter"`
	Version            int64             `json:"version" binding:"required"`
	ConfirmZeroPremium bool              `json:"confirmZeroPremium"`
	Vehicle            *VehicleRequest   `json:"vehicle"`
	Owner              *PersonRequest    `json:"owner"`
	Proposer           *PersonRequest    `json:"proposer"`
	Insured            *PersonRequest    `json:"insured"`
	Coverages          []CoverageRequest `json:"coverages"`
	PaymentLink        string            `json:"paymentLink"`
}

// ToInput falls back to the operator header when the body names no underwriter.
func (r DecisionRequest) ToInput(operator string) usecase.DecisionInput {
	in := usecase.DecisionInput{
		Acceptance:         r.Acceptance,
		RiskLevel:          r.RiskLevel,
		Rationale:          firstSet(r.Rationale, r.RiskReason),
		FinalPremium:       r.FinalPremium,
		EffectiveDate:      r.EffectiveDate,
		ExpiryDate:         r.ExpiryDate,
		Underwriter:        r.Underwriter,
		Version:            r.Version,
		ConfirmZeroPremium: r.ConfirmZeroPremium,
		Owner:              personPtr(r.Owner),
		Proposer:           personPtr(r.Proposer),
		Insured:            personPtr(r.Insured),
		Coverages:          toLines(r.Coverages),
		PaymentLink:        strings.TrimSpace(r.PaymentLink),
	}
	if strings.TrimSpace(in.Underwriter) == "" {
		in.Underwriter = operator
	}
	if r.Vehicle != nil {
		v := r.Vehicle.ToRecord()
		in.Vehicle = &v
	}
	return in
}

func firstSet(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

type LifecycleRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r LifecycleRequest) Target() entities.ProposalStatus {
	return entities.ProposalStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}
