package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentArtifact is the one-time code/token pair handed to the customer after acceptance.
//
// Storage model (DynamoDB):
//   - PK: auth_code
//   - referenced from the proposal by auth_code
//
// Lifecycle:
//   - minted together with the ACCEPT decision (same atomic write)
//   - consumed exactly once when the customer authenticates
//   - invalidated when the proposal reaches a terminal status
//
// CollectionLink keeps the provider payment URL verbatim; it is never parsed.
type PaymentArtifact struct {
	ID             string          `json:"id"`
	ProposalID     string          `json:"proposal_id"`
	AuthCode       string          `json:"auth_code"`
	QRPayload      string          `json:"qr_payload"`
	Amount         decimal.Decimal `json:"amount"`
	CollectionLink string          `json:"collection_link,omitempty"`
	IssuedAt       time.Time       `json:"issued_at"`
	ConsumedAt     *time.Time      `json:"consumed_at,omitempty"`
	InvalidatedAt  *time.Time      `json:"invalidated_at,omitempty"`
}

// Usable reports whether the artifact may still authenticate a transaction.
func (a PaymentArtifact) Usable() bool {
	return a.ConsumedAt == nil && a.InvalidatedAt == nil
}
