package payments

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"

	"underwriting_service/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// MockLinkProvider returns a deterministic URL. Enabled by PAYMENT_GATEWAY_MOCK.
type MockLinkProvider struct {
	BaseURL string
}

var _ interfaces.IPaymentLinkProvider = MockLinkProvider{}

func (p MockLinkProvider) GenerateLink(ctx context.Context, productName string, amount decimal.Decimal) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	base := p.BaseURL
	if base == "" {
		base = "https://pay.mock.local/checkout"
	}
	sum := sha256.Sum256([]byte(productName + "|" + amount.StringFixed(2)))
	q := url.Values{}
	q.Set("ref", hex.EncodeToString(sum[:8]))
	q.Set("amount", amount.StringFixed(2))
	return base + "?" + q.Encode(), nil
}
