package request

import (
	"strings"

	"underwriting_service/internal/usecase"

	"github.com/shopspring/decimal"
)

// PaymentLinkRequest asks for a collection URL, either for a proposal or standalone.
type PaymentLinkRequest struct {
	ProposalID  string           `json:"proposalId"`
	ProductName string           `json:"productName"`
	Amount      *decimal.Decimal `json:"amount"`
}

func (r PaymentLinkRequest) ToInput() usecase.PaymentLinkRequest {
	return usecase.PaymentLinkRequest{
		ProposalID:  strings.TrimSpace(r.ProposalID),
		ProductName: strings.TrimSpace(r.ProductName),
		Amount:      r.Amount,
	}
}

type ConsumeRequest struct {
	AuthCode string `json:"authCode" binding:"required"`
}
