package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Acceptance string

const (
	AcceptanceAccept Acceptance = "ACCEPT"
	AcceptanceReject Acceptance = "REJECT"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Decision is the underwriter's ruling on a proposal.
//
// FinalPremium snapshots the computed total at decision time and is the amount the
// customer pays. EffectiveDate and ExpiryDate are set only on ACCEPT.
type Decision struct {
	Acceptance    Acceptance      `json:"acceptance"`
	RiskLevel     RiskLevel       `json:"risk_level"`
	Rationale     string          `json:"rationale,omitempty"`
	FinalPremium  decimal.Decimal `json:"final_premium"`
	EffectiveDate *time.Time      `json:"effective_date,omitempty"`
	ExpiryDate    *time.Time      `json:"expiry_date,omitempty"`
	Underwriter   string          `json:"underwriter"`
	DecidedAt     time.Time       `json:"decided_at"`
}

func (a Acceptance) Valid() bool {
	return a == AcceptanceAccept || a == AcceptanceReject
}

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}
