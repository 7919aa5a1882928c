package request

import (
	"strings"

	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/usecase"

	"github.com/shopspring/decimal"
)

type VehicleRequest struct {
	Plate                  string `json:"plate"`
	VIN                    string `json:"vin"`
	EngineNo               string `json:"engineNo"`
	BrandModel             string `json:"brandModel"`
	VehicleType            string `json:"vehicleType"`
	UsageNature            string `json:"usageNature"`
	EnergyType             string `json:"energyType"`
	RegistrationDate       string `json:"registrationDate"`
	LicenseIssueDate       string `json:"licenseIssueDate"`
	CurbWeight             string `json:"curbWeight"`
	ApprovedLoadWeight     string `json:"approvedLoadWeight"`
	ApprovedPassengerCount string `json:"approvedPassengerCount"`
}

func (r VehicleRequest) ToRecord() entities.VehicleRecord {
	return entities.VehicleRecord{
		Plate:                  strings.ToUpper(strings.TrimSpace(r.Plate)),
		VIN:                    strings.ToUpper(strings.TrimSpace(r.VIN)),
		EngineNo:               strings.TrimSpace(r.EngineNo),
		BrandModel:             strings.TrimSpace(r.BrandModel),
		VehicleType:            strings.TrimSpace(r.VehicleType),
		UsageNature:            strings.TrimSpace(r.UsageNature),
		EnergyType:             strings.TrimSpace(r.EnergyType),
		RegistrationDate:       strings.TrimSpace(r.RegistrationDate),
		LicenseIssueDate:       strings.TrimSpace(r.LicenseIssueDate),
		CurbWeight:             strings.TrimSpace(r.CurbWeight),
		ApprovedLoadWeight:     strings.TrimSpace(r.ApprovedLoadWeight),
		ApprovedPassengerCount: strings.TrimSpace(r.ApprovedPassengerCount),
	}
}

type PersonRequest struct {
	Name         string `json:"name"`
	IDType       string `json:"idType"`
	IDNumber     string `json:"idNumber"`
	Mobile       string `json:"mobile"`
	Address      string `json:"address"`
	Gender       string `json:"gender"`
	IdentityType string `json:"identityType"`
}

func (r PersonRequest) ToRecord() entities.PersonRecord {
	return entities.PersonRecord{
		Name:         strings.TrimSpace(r.Name),
		IDType:       strings.TrimSpace(r.IDType),
		IDNumber:     strings.ToUpper(strings.TrimSpace(r.IDNumber)),
		Mobile:       strings.TrimSpace(r.Mobile),
		Address:      strings.TrimSpace(r.Address),
		Gender:       strings.TrimSpace(r.Gender),
		IdentityType: strings.TrimSpace(r.IdentityType),
	}
}

// personPtr converts an optional person; nil stays nil.
func personPtr(r *PersonRequest) *entities.PersonRecord {
	if r == nil {
		return nil
	}
	p := r.ToRecord()
	return &p
}

// CoverageRequest accepts money as JSON numbers or strings. A missing rate means 1.0.
type CoverageRequest struct {
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	SumInsured  decimal.Decimal  `json:"sumInsured"`
	BasePremium decimal.Decimal  `json:"basePremium"`
	Rate        *decimal.Decimal `json:"rate"`
}

func (r CoverageRequest) ToLine() entities.CoverageLine {
	l := entities.CoverageLine{
		Code:        strings.TrimSpace(r.Code),
		Name:        strings.TrimSpace(r.Name),
		SumInsured:  r.SumInsured,
		BasePremium: r.BasePremium,
	}
	if r.Rate != nil {
		l.Rate = *r.Rate
	}
	return l
}

func toLines(in []CoverageRequest) []entities.CoverageLine {
	if in == nil {
		return nil
	}
	out := make([]entities.CoverageLine, 0, len(in))
	for _, c := range in {
		out = append(out, c.ToLine())
	}
	return out
}

// CreateProposalRequest is posted by the customer submission collaborator.
type CreateProposalRequest struct {
	ID        string            `json:"id"`
	Vehicle   VehicleRequest    `json:"vehicle"`
	Owner     PersonRequest     `json:"owner"`
	Proposer  *PersonRequest    `json:"proposer"`
	Insured   *PersonRequest    `json:"insured"`
	Coverages []CoverageRequest `json:"coverages"`
}

func (r CreateProposalRequest) ToInput(actor string) usecase.CreateProposalInput {
	return usecase.CreateProposalInput{
		ID:        strings.TrimSpace(r.ID),
		Vehicle:   r.Vehicle.ToRecord(),
		Owner:     r.Owner.ToRecord(),
		Proposer:  personPtr(r.Proposer),
		Insured:   personPtr(r.Insured),
		Coverages: toLines(r.Coverages),
		Actor:     actor,
	}
}

type UpdateVehicleRequest struct {
	Version int64          `json:"version" binding:"required"`
	Vehicle VehicleRequest `json:"vehicle"`
}

type UpdatePersonsRequest struct {
	Version             int64          `json:"version" binding:"required"`
	Owner               *PersonRequest `json:"owner"`
	Proposer            *PersonRequest `json:"proposer"`
	Insured             *PersonRequest `json:"insured"`
	ProposerSameAsOwner bool           `json:"proposerSameAsOwner"`
	InsuredSameAsOwner  bool           `json:"insuredSameAsOwner"`
}

func (r UpdatePersonsRequest) ToInput() usecase.PersonsInput {
	return usecase.PersonsInput{
		Owner:               personPtr(r.Owner),
		Proposer:            personPtr(r.Proposer),
		Insured:             personPtr(r.Insured),
		ProposerSameAsOwner: r.ProposerSameAsOwner,
		InsuredSameAsOwner:  r.InsuredSameAsOwner,
	}
}

type CoverageEditRequest struct {
	Version  int64           `json:"version" binding:"required"`
	Coverage CoverageRequest `json:"coverage"`
}
