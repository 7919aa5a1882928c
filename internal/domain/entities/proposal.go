package entities

import "time"

// ProposalStatus is the lifecycle stage of a proposal.
//
// Domain notes:
//   - The lifecycle package owns the transition table; nothing else decides what comes next.
//   - Values are persisted verbatim and surfaced to the operator console.
type ProposalStatus string

const (
	StatusSubmitted             ProposalStatus = "SUBMITTED"
	StatusUnderwritingConfirmed ProposalStatus = "UNDERWRITING_CONFIRMED"
	StatusRejected              ProposalStatus = "REJECTED"
	StatusPaid                  ProposalStatus = "PAID"
	StatusPolicyIssued          ProposalStatus = "POLICY_ISSUED"
	StatusCompleted             ProposalStatus = "COMPLETED"
)

// Proposal is a vehicle-insurance application moving through underwriting.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status, sort key submitted_at
//
// Premiums are never stored on the proposal. They are derived from Coverages on read,
// the only persisted money figure is Decision.FinalPremium (a snapshot).
type Proposal struct {
	ID     string         `json:"id"`
	Status ProposalStatus `json:"status"`

	// Version increases on every write and guards concurrent operator edits.
	Version int64 `json:"version"`

	CreatedAt   time.Time  `json:"created_at"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	RejectedAt  *time.Time `json:"rejected_at,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	IssuedAt    *time.Time `json:"issued_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Vehicle  VehicleRecord `json:"vehicle"`
	Owner    PersonRecord  `json:"owner"`
	Proposer *PersonRecord `json:"proposer,omitempty"`
	Insured  *PersonRecord `json:"insured,omitempty"`

	Coverages []CoverageLine `json:"coverages"`

	// Decisions is append-only. The last entry is the ruling in force.
	Decisions []Decision `json:"decisions,omitempty"`

	// AuthCode references the live PaymentArtifact, empty until an ACCEPT decision.
	AuthCode string `json:"auth_code,omitempty"`

	// PaymentLink is an opaque collection URL captured before the decision is rendered.
	PaymentLink string `json:"payment_link,omitempty"`

	PolicyNo string `json:"policy_no,omitempty"`

	History []StatusChange `json:"history,omitempty"`
}

// StatusChange is one audited lifecycle advance.
type StatusChange struct {
	From  ProposalStatus `json:"from,omitempty"`
	To    ProposalStatus `json:"to"`
	Actor string         `json:"actor"`
	At    time.Time      `json:"at"`
}

// VehicleRecord holds the vehicle facts confirmed by the operator.
type VehicleRecord struct {
	Plate                  string `json:"plate"`
	VIN                    string `json:"vin"`
	EngineNo               string `json:"engine_no"`
	BrandModel             string `json:"brand_model"`
	VehicleType            string `json:"vehicle_type"`
	UsageNature            string `json:"usage_nature"`
	EnergyType             string `json:"energy_type"`
	RegistrationDate       string `json:"registration_date"`
	LicenseIssueDate       string `json:"license_issue_date"`
	CurbWeight             string `json:"curb_weight"`
	ApprovedLoadWeight     string `json:"approved_load_weight"`
	ApprovedPassengerCount string `json:"approved_passenger_count"`
}

// PersonRecord is an owner, proposer or insured party.
type PersonRecord struct {
	Name         string `json:"name"`
	IDType       string `json:"id_type"`
	IDNumber     string `json:"id_number"`
	Mobile       string `json:"mobile"`
	Address      string `json:"address"`
	Gender       string `json:"gender,omitempty"`
	IdentityType string `json:"identity_type,omitempty"`
}

// CurrentDecision returns the ruling in force, if any.
func (p Proposal) CurrentDecision() (Decision, bool) {
	if len(p.Decisions) == 0 {
		return Decision{}, false
	}
	return p.Decisions[len(p.Decisions)-1], true
}

// ProposerOrOwner resolves the proposer, aliased to the owner when absent.
func (p Proposal) ProposerOrOwner() PersonRecord {
	if p.Proposer != nil {
		return *p.Proposer
	}
	return p.Owner
}

// InsuredOrOwner resolves the insured, aliased to the owner when absent.
func (p Proposal) InsuredOrOwner() PersonRecord {
	if p.Insured != nil {
		return *p.Insured
	}
	return p.Owner
}

// RecordsFrozen reports whether vehicle, person and coverage records are read-only.
func (p Proposal) RecordsFrozen() bool {
	return p.Status != StatusSubmitted || len(p.Decisions) > 0
}
