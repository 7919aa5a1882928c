package response

import (
	"time"

	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/domain/premium"
	"underwriting_service/internal/usecase"

	"github.com/shopspring/decimal"
)

// money renders amounts with exactly two places.
func money(d decimal.Decimal) string {
	return d.StringFixed(premium.Places)
}

type ProposalSummaryResponse struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submittedAt"`
	Plate        string    `json:"plate"`
	BrandModel   string    `json:"brandModel"`
	VehicleType  string    `json:"vehicleType"`
	OwnerName    string    `json:"ownerName"`
	TotalPremium string    `json:"totalPremium"`
}

func FromSummaries(list []usecase.ProposalSummary) []ProposalSummaryResponse {
	out := make([]ProposalSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ProposalSummaryResponse{
			ID:           s.ID,
			Status:       string(s.Status),
			SubmittedAt:  s.SubmittedAt,
			Plate:        s.Plate,
			BrandModel:   s.BrandModel,
			VehicleType:  s.VehicleType,
			OwnerName:    s.OwnerName,
			TotalPremium: money(s.Total),
		})
	}
	return out
}

func rate(r decimal.Decimal) string {
	if r.IsZero() {
		r = entities.DefaultRate
	}
	return r.String()
}

type CoverageResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	SumInsured  string `json:"sumInsured"`
	BasePremium string `json:"basePremium"`
	Rate        string `json:"rate"`
	Premium     string `json:"premium"`
}

type DecisionView struct {
	Acceptance    string    `json:"acceptance"`
	RiskLevel     string    `json:"riskLevel"`
	Rationale     string    `json:"rationale,omitempty"`
	FinalPremium  string    `json:"finalPremium"`
	EffectiveDate string    `json:"effectiveDate,omitempty"`
	ExpiryDate    string    `json:"expiryDate,omitempty"`
	Underwriter   string    `json:"underwriter"`
	DecidedAt     time.Time `json:"decidedAt"`
}

func FromDecision(d entities.Decision) DecisionView {
	v := DecisionView{
		Acceptance:   string(d.Acceptance),
		RiskLevel:    string(d.RiskLevel),
		Rationale:    d.Rationale,
		FinalPremium: money(d.FinalPremium),
		Underwriter:  d.Underwriter,
		DecidedAt:    d.DecidedAt,
	}
	if d.EffectiveDate != nil {
		v.EffectiveDate = d.EffectiveDate.Format("2006-01-02")
	}
	if d.ExpiryDate != nil {
		v.ExpiryDate = d.ExpiryDate.Format("2006-01-02")
	}
	return v
}

// ArtifactView never exposes the capability token beyond the qr payload the operator hands out.
type ArtifactView struct {
	AuthCode       string     `json:"authCode"`
	QRPayload      string     `json:"qrPayload"`
	Amount         string     `json:"amount"`
	CollectionLink string     `json:"collectionLink,omitempty"`
	IssuedAt       time.Time  `json:"issuedAt"`
	ConsumedAt     *time.Time `json:"consumedAt,omitempty"`
	InvalidatedAt  *time.Time `json:"invalidatedAt,omitempty"`
}

func FromArtifact(a *entities.PaymentArtifact) *ArtifactView {
	if a == nil {
		return nil
	}
	return &ArtifactView{
		AuthCode:       a.AuthCode,
		QRPayload:      a.QRPayload,
		Amount:         money(a.Amount),
		CollectionLink: a.CollectionLink,
		IssuedAt:       a.IssuedAt,
		ConsumedAt:     a.ConsumedAt,
		InvalidatedAt:  a.InvalidatedAt,
	}
}

type ProposalDetailResponse struct {
	ID                  string                  `json:"id"`
	Status              string                  `json:"status"`
	Version             int64                   `json:"version"`
	CreatedAt           time.Time               `json:"createdAt"`
	SubmittedAt         time.Time               `json:"submittedAt"`
	ConfirmedAt         *time.Time              `json:"confirmedAt,omitempty"`
	RejectedAt          *time.Time              `json:"rejectedAt,omitempty"`
	PaidAt              *time.Time              `json:"paidAt,omitempty"`
	IssuedAt            *time.Time              `json:"issuedAt,omitempty"`
	CompletedAt         *time.Time              `json:"completedAt,omitempty"`
	Vehicle             entities.VehicleRecord  `json:"vehicle"`
	Owner               entities.PersonRecord   `json:"owner"`
	Proposer            entities.PersonRecord   `json:"proposer"`
	Insured             entities.PersonRecord   `json:"insured"`
	ProposerSameAsOwner bool                    `json:"proposerSameAsOwner"`
	InsuredSameAsOwner  bool                    `json:"insuredSameAsOwner"`
	Coverages           []CoverageResponse      `json:"coverages"`
	TotalPremium        string                  `json:"totalPremium"`
	Decision            *DecisionView           `json:"decision,omitempty"`
	Decisions           []DecisionView          `json:"decisions,omitempty"`
	PaymentLink         string                  `json:"paymentLink,omitempty"`
	PolicyNo            string                  `json:"policyNo,omitempty"`
	Artifact            *ArtifactView           `json:"artifact,omitempty"`
	History             []entities.StatusChange `json:"history,omitempty"`
}

func FromDetail(d usecase.ProposalDetail) ProposalDetailResponse {
	p := d.Proposal
	res := ProposalDetailResponse{
		ID:                  p.ID,
		Status:              string(p.Status),
		Version:             p.Version,
		CreatedAt:           p.CreatedAt,
		SubmittedAt:         p.SubmittedAt,
		ConfirmedAt:         p.ConfirmedAt,
		RejectedAt:          p.RejectedAt,
		PaidAt:              p.PaidAt,
		IssuedAt:            p.IssuedAt,
		CompletedAt:         p.CompletedAt,
		Vehicle:             p.Vehicle,
		Owner:               p.Owner,
		Proposer:            p.ProposerOrOwner(),
		Insured:             p.InsuredOrOwner(),
		ProposerSameAsOwner: p.Proposer == nil,
		InsuredSameAsOwner:  p.Insured == nil,
		Coverages:           make([]CoverageResponse, 0, len(d.Lines)),
		TotalPremium:        money(d.Total),
		PaymentLink:         p.PaymentLink,
		PolicyNo:            p.PolicyNo,
		Artifact:            FromArtifact(d.Artifact),
		History:             p.History,
	}
	for _, l := range d.Lines {
		res.Coverages = append(res.Coverages, CoverageResponse{
			Code:        l.Code,
			Name:        l.Name,
			SumInsured:  money(l.SumInsured),
			BasePremium: money(l.BasePremium),
			Rate:        rate(l.Rate),
			Premium:     money(l.Premium),
		})
	}
	for _, dec := range p.Decisions {
		res.Decisions = append(res.Decisions, FromDecision(dec))
	}
	if cur, ok := p.CurrentDecision(); ok {
		v := FromDecision(cur)
		res.Decision = &v
	}
	return res
}
