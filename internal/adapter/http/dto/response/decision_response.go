package response

import (
	"underwriting_service/internal/usecase"
)

// DecisionResponse is what the operator console renders after submit. QRImage is a
// data: URL of the PNG so the console can show it without a second request.
type DecisionResponse struct {
	Success      bool         `json:"success"`
	ProposalID   string       `json:"proposalId"`
	Status       string       `json:"status"`
	Version      int64        `json:"version"`
	FinalPremium string       `json:"finalPremium"`
	AuthCode     string       `json:"authCode,omitempty"`
	QRPayload    string       `json:"qrPayload,omitempty"`
	QRImage      string       `json:"qrImage,omitempty"`
	Decision     DecisionView `json:"decision"`
}

func FromDecisionResult(res usecase.DecisionResult, qrImage string) DecisionResponse {
	out := DecisionResponse{
		Success:      true,
		ProposalID:   res.Proposal.ID,
		Status:       string(res.Proposal.Status),
		Version:      res.Proposal.Version,
		FinalPremium: money(res.Decision.FinalPremium),
		Decision:     FromDecision(res.Decision),
	}
	if res.Artifact != nil {
		out.AuthCode = res.Artifact.AuthCode
		out.QRPayload = res.Artifact.QRPayload
		out.QRImage = qrImage
	}
	return out
}

type LifecycleResponse struct {
	Success    bool   `json:"success"`
	ProposalID string `json:"proposalId"`
	Status     string `json:"status"`
	Version    int64  `json:"version"`
}

type PolicyResponse struct {
	ProposalID string `json:"proposalId"`
	PolicyNo   string `json:"policyNo"`
	Status     string `json:"status"`
}
