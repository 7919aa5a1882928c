package repository

import (
	"underwriting_service/internal/domain/entities"
)

// Money is stored as strings to keep decimal precision, timestamps as RFC3339Nano.

type proposalItem struct {
	ID          string         `dynamodbav:"id"`
	Status      string         `dynamodbav:"status"`
	Version     int64          `dynamodbav:"version"`
	CreatedAt   string         `dynamodbav:"created_at"`
	UpdatedAt   string         `dynamodbav:"updated_at,omitempty"`
	SubmittedAt string         `dynamodbav:"submitted_at"`
	ConfirmedAt string         `dynamodbav:"confirmed_at,omitempty"`
	RejectedAt  string         `dynamodbav:"rejected_at,omitempty"`
	PaidAt      string         `dynamodbav:"paid_at,omitempty"`
	IssuedAt    string         `dynamodbav:"issued_at,omitempty"`
	CompletedAt string         `dynamodbav:"completed_at,omitempty"`
	Vehicle     vehicleItem    `dynamodbav:"vehicle"`
	Owner       personItem     `dynamodbav:"owner"`
	Proposer    *personItem    `dynamodbav:"proposer,omitempty"`
	Insured     *personItem    `dynamodbav:"insured,omitempty"`
	Coverages   []coverageItem `dynamodbav:"coverages"`
	Decisions   []decisionItem `dynamodbav:"decisions,omitempty"`
	AuthCode    string         `dynamodbav:"auth_code,omitempty"`
	PaymentLink string         `dynamodbav:"payment_link,omitempty"`
	PolicyNo    string         `dynamodbav:"policy_no,omitempty"`
	History     []historyItem  `dynamodbav:"history,omitempty"`
}

type vehicleItem struct {
	Plate                  string `dynamodbav:"plate,omitempty"`
	VIN                    string `dynamodbav:"vin,omitempty"`
	EngineNo               string `dynamodbav:"engine_no,omitempty"`
	BrandModel             string `dynamodbav:"brand_model,omitempty"`
	VehicleType            string `dynamodbav:"vehicle_type,omitempty"`
	UsageNature            string `dynamodbav:"usage_nature,omitempty"`
	EnergyType             string `dynamodbav:"energy_type,omitempty"`
	RegistrationDate       string `dynamodbav:"registration_date,omitempty"`
	LicenseIssueDate       string `dynamodbav:"license_issue_date,omitempty"`
	CurbWeight             string `dynamodbav:"curb_weight,omitempty"`
	ApprovedLoadWeight     string `dynamodbav:"approved_load_weight,omitempty"`
	ApprovedPassengerCount string `dynamodbav:"approved_passenger_count,omitempty"`
}

type personItem struct {
	Name         string `dynamodbav:"name,omitempty"`
	IDType       string `dynamodbav:"id_type,omitempty"`
	IDNumber     string `dynamodbav:"id_number,omitempty"`
	Mobile       string `dynamodbav:"mobile,omitempty"`
	Address      string `dynamodbav:"address,omitempty"`
	Gender       string `dynamodbav:"gender,omitempty"`
	IdentityType string `dynamodbav:"identity_type,omitempty"`
}

type coverageItem struct {
	Code        string `dynamodbav:"code"`
	Name        string `dynamodbav:"name"`
	SumInsured  string `dynamodbav:"sum_insured"`
	BasePremium string `dynamodbav:"base_premium"`
	Rate        string `dynamodbav:"rate"`
}

type decisionItem struct {
	Acceptance    string `dynamodbav:"acceptance"`
	RiskLevel     string `dynamodbav:"risk_level"`
	Rationale     string `dynamodbav:"rationale,omitempty"`
	FinalPremium  string `dynamodbav:"final_premium"`
	EffectiveDate string `dynamodbav:"effective_date,omitempty"`
	ExpiryDate    string `dynamodbav:"expiry_date,omitempty"`
	Underwriter   string `dynamodbav:"underwriter"`
	DecidedAt     string `dynamodbav:"decided_at"`
}

type historyItem struct {
	From  string `dynamodbav:"from,omitempty"`
	To    string `dynamodbav:"to"`
	Actor string `dynamodbav:"actor"`
	At    string `dynamodbav:"at"`
}

type artifactItem struct {
	AuthCode       string `dynamodbav:"auth_code"`
	ID             string `dynamodbav:"id"`
	ProposalID     string `dynamodbav:"proposal_id"`
	QRPayload      string `dynamodbav:"qr_payload"`
	Amount         string `dynamodbav:"amount"`
	CollectionLink string `dynamodbav:"collection_link,omitempty"`
	IssuedAt       string `dynamodbav:"issued_at"`
	ConsumedAt     string `dynamodbav:"consumed_at,omitempty"`
	InvalidatedAt  string `dynamodbav:"invalidated_at,omitempty"`
}

func toProposalItem(p entities.Proposal) proposalItem {
	it := proposalItem{
		ID:          p.ID,
		Status:      string(p.Status),
		Version:     p.Version,
		CreatedAt:   formatTime(p.CreatedAt),
		SubmittedAt: formatTime(p.SubmittedAt),
		ConfirmedAt: formatTimePtr(p.ConfirmedAt),
		RejectedAt:  formatTimePtr(p.RejectedAt),
		PaidAt:      formatTimePtr(p.PaidAt),
		IssuedAt:    formatTimePtr(p.IssuedAt),
		CompletedAt: formatTimePtr(p.CompletedAt),
		Vehicle:     toVehicleItem(p.Vehicle),
		Owner:       toPersonItem(p.Owner),
		Proposer:    toPersonItemPtr(p.Proposer),
		Insured:     toPersonItemPtr(p.Insured),
		Coverages:   toCoverageItems(p.Coverages),
		AuthCode:    p.AuthCode,
		PaymentLink: p.PaymentLink,
		PolicyNo:    p.PolicyNo,
	}
	for _, d := range p.Decisions {
		it.Decisions = append(it.Decisions, toDecisionItem(d))
	}
	for _, h := range p.History {
		it.History = append(it.History, toHistoryItem(h))
	}
	return it
}

func fromProposalItem(it proposalItem) entities.Proposal {
	p := entities.Proposal{
		ID:          it.ID,
		Status:      entities.ProposalStatus(it.Status),
		Version:     it.Version,
		CreatedAt:   parseTime(it.CreatedAt),
		SubmittedAt: parseTime(it.SubmittedAt),
		ConfirmedAt: parseTimePtr(it.ConfirmedAt),
		RejectedAt:  parseTimePtr(it.RejectedAt),
		PaidAt:      parseTimePtr(it.PaidAt),
		IssuedAt:    parseTimePtr(it.IssuedAt),
		CompletedAt: parseTimePtr(it.CompletedAt),
		Vehicle:     fromVehicleItem(it.Vehicle),
		Owner:       fromPersonItem(it.Owner),
		AuthCode:    it.AuthCode,
		PaymentLink: it.PaymentLink,
		PolicyNo:    it.PolicyNo,
	}
	if it.Proposer != nil {
		v := fromPersonItem(*it.Proposer)
		p.Proposer = &v
	}
	if it.Insured != nil {
		v := fromPersonItem(*it.Insured)
		p.Insured = &v
	}
	for _, c := range it.Coverages {
		p.Coverages = append(p.Coverages, entities.CoverageLine{
			Code:        c.Code,
			Name:        c.Name,
			SumInsured:  parseDecimal(c.SumInsured),
			BasePremium: parseDecimal(c.BasePremium),
			Rate:        parseDecimal(c.Rate),
		})
	}
	for _, d := range it.Decisions {
		p.Decisions = append(p.Decisions, entities.Decision{
			Acceptance:    entities.Acceptance(d.Acceptance),
			RiskLevel:     entities.RiskLevel(d.RiskLevel),
			Rationale:     d.Rationale,
			FinalPremium:  parseDecimal(d.FinalPremium),
			EffectiveDate: parseTimePtr(d.EffectiveDate),
			ExpiryDate:    parseTimePtr(d.ExpiryDate),
			Underwriter:   d.Underwriter,
			DecidedAt:     parseTime(d.DecidedAt),
		})
	}
	for _, h := range it.History {
		p.History = append(p.History, entities.StatusChange{
			From:  entities.ProposalStatus(h.From),
			To:    entities.ProposalStatus(h.To),
			Actor: h.Actor,
			At:    parseTime(h.At),
		})
	}
	return p
}

func toVehicleItem(v entities.VehicleRecord) vehicleItem {
	return vehicleItem{
		Plate:                  v.Plate,
		VIN:                    v.VIN,
		EngineNo:               v.EngineNo,
		BrandModel:             v.BrandModel,
		VehicleType:            v.VehicleType,
		UsageNature:            v.UsageNature,
		EnergyType:             v.EnergyType,
		RegistrationDate:       v.RegistrationDate,
		LicenseIssueDate:       v.LicenseIssueDate,
		CurbWeight:             v.CurbWeight,
		ApprovedLoadWeight:     v.ApprovedLoadWeight,
		ApprovedPassengerCount: v.ApprovedPassengerCount,
	}
}

func fromVehicleItem(v vehicleItem) entities.VehicleRecord {
	return entities.VehicleRecord{
		Plate:                  v.Plate,
		VIN:                    v.VIN,
		EngineNo:               v.EngineNo,
		BrandModel:             v.BrandModel,
		VehicleType:            v.VehicleType,
		UsageNature:            v.UsageNature,
		EnergyType:             v.EnergyType,
		RegistrationDate:       v.RegistrationDate,
		LicenseIssueDate:       v.LicenseIssueDate,
		CurbWeight:             v.CurbWeight,
		ApprovedLoadWeight:     v.ApprovedLoadWeight,
		ApprovedPassengerCount: v.ApprovedPassengerCount,
	}
}

func toPersonItem(p entities.PersonRecord) personItem {
	return personItem(p)
}

func toPersonItemPtr(p *entities.PersonRecord) *personItem {
	if p == nil {
		return nil
	}
	it := toPersonItem(*p)
	return &it
}

func fromPersonItem(it personItem) entities.PersonRecord {
	return entities.PersonRecord(it)
}

func toCoverageItems(lines []entities.CoverageLine) []coverageItem {
	out := make([]coverageItem, 0, len(lines))
	for _, l := range lines {
		out = append(out, coverageItem{
			Code:        l.Code,
			Name:        l.Name,
			SumInsured:  l.SumInsured.String(),
			BasePremium: l.BasePremium.String(),
			Rate:        l.Rate.String(),
		})
	}
	return out
}

func toDecisionItem(d entities.Decision) decisionItem {
	return decisionItem{
		Acceptance:    string(d.Acceptance),
		RiskLevel:     string(d.RiskLevel),
		Rationale:     d.Rationale,
		FinalPremium:  d.FinalPremium.StringFixed(2),
		EffectiveDate: formatTimePtr(d.EffectiveDate),
		ExpiryDate:    formatTimePtr(d.ExpiryDate),
		Underwriter:   d.Underwriter,
		DecidedAt:     formatTime(d.DecidedAt),
	}
}

func toHistoryItem(h entities.StatusChange) historyItem {
	return historyItem{From: string(h.From), To: string(h.To), Actor: h.Actor, At: formatTime(h.At)}
}

func toArtifactItem(a entities.PaymentArtifact) artifactItem {
	return artifactItem{
		AuthCode:       a.AuthCode,
		ID:             a.ID,
		ProposalID:     a.ProposalID,
		QRPayload:      a.QRPayload,
		Amount:         a.Amount.StringFixed(2),
		CollectionLink: a.CollectionLink,
		IssuedAt:       formatTime(a.IssuedAt),
		ConsumedAt:     formatTimePtr(a.ConsumedAt),
		InvalidatedAt:  formatTimePtr(a.InvalidatedAt),
	}
}

func fromArtifactItem(it artifactItem) entities.PaymentArtifact {
	return entities.PaymentArtifact{
		ID:             it.ID,
		ProposalID:     it.ProposalID,
		AuthCode:       it.AuthCode,
		QRPayload:      it.QRPayload,
		Amount:         parseDecimal(it.Amount),
		CollectionLink: it.CollectionLink,
		IssuedAt:       parseTime(it.IssuedAt),
		ConsumedAt:     parseTimePtr(it.ConsumedAt),
		InvalidatedAt:  parseTimePtr(it.InvalidatedAt),
	}
}
