package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// IPaymentLinkProvider abstracts the external service that turns (product, amount)
// into a customer payment URL (link worker, Mercado Pago preference, mock).
//
// The returned URL is treated as opaque and stored verbatim.
type IPaymentLinkProvider interface {
	GenerateLink(ctx context.Context, productName string, amount decimal.Decimal) (string, error)
}

// CapabilityClaims is what a customer-facing payment token carries.
type CapabilityClaims struct {
	ProposalID string
	ArtifactID string
	Amount     decimal.Decimal
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

// ICapabilityTokens signs and verifies payment capability tokens.
type ICapabilityTokens interface {
	Issue(claims CapabilityClaims) (string, error)
	Verify(token string) (CapabilityClaims, error)
}

// IQREncoder renders a payload as a PNG QR code.
type IQREncoder interface {
	Encode(payload string) ([]byte, error)
}
