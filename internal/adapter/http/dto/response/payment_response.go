package response

import (
	"time"

	"underwriting_service/internal/usecase"
)

type PaymentLinkResponse struct {
	PaymentLink string `json:"paymentLink"`
	ProductName string `json:"productName"`
	Amount      string `json:"amount"`
}

func FromPaymentLink(res usecase.PaymentLinkResult) PaymentLinkResponse {
	return PaymentLinkResponse{PaymentLink: res.Link, ProductName: res.ProductName, Amount: money(res.Amount)}
}

type ConsumeResponse struct {
	Success    bool   `json:"success"`
	ProposalID string `json:"proposalId"`
	Status     string `json:"status"`
	Amount     string `json:"amount"`
}

func FromConsume(res usecase.ConsumeResult) ConsumeResponse {
	return ConsumeResponse{
		Success:    true,
		ProposalID: res.Artifact.ProposalID,
		Status:     string(res.Proposal.Status),
		Amount:     money(res.Artifact.Amount),
	}
}

type PaymentStatusResponse struct {
	ProposalID  string    `json:"proposalId"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount"`
	PaymentLink string    `json:"paymentLink,omitempty"`
	Consumed    bool      `json:"consumed"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func FromPaymentStatus(v usecase.PaymentStatusView) PaymentStatusResponse {
	return PaymentStatusResponse{
		ProposalID:  v.ProposalID,
		Status:      string(v.Status),
		Amount:      money(v.Amount),
		PaymentLink: v.PaymentLink,
		Consumed:    v.Consumed,
		ExpiresAt:   v.ExpiresAt,
	}
}
