package payments

import (
	"context"
	"errors"
	"strings"

	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoNotConfigured = errors.New("mercado pago link provider not configured")

// MercadoPagoLinkProvider creates a checkout preference and returns its init_point.
// TEST- access tokens return the sandbox init point.
type MercadoPagoLinkProvider struct {
	client  preference.Client
	sandbox bool
	log     *logger.Logger
}

var _ interfaces.IPaymentLinkProvider = (*MercadoPagoLinkProvider)(nil)

func NewMercadoPagoLinkProvider(accessToken string, log *logger.Logger) (*MercadoPagoLinkProvider, error) {
	log = logger.OrNop(log).Component("payment.mercadopago")
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		log.Error("missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", "error", err)
		return nil, err
	}
	log.Info("Mercado Pago client initialized")

	return &MercadoPagoLinkProvider{
		client:  preference.NewClient(cfg),
		sandbox: strings.HasPrefix(accessToken, "TEST-"),
		log:     log,
	}, nil
}

func (p *MercadoPagoLinkProvider) GenerateLink(ctx context.Context, productName string, amount decimal.Decimal) (string, error) {
	if p == nil || p.client == nil {
		return "", ErrMercadoPagoNotConfigured
	}

	req := preference.Request{
		Items: []preference.ItemRequest{{
			Title:     productName,
			Quantity:  1,
			UnitPrice: amount.InexactFloat64(),
		}},
	}

	resp, err := p.client.Create(ctx, req)
	if err != nil {
		p.log.Error("preference create failed", "error", err)
		return "", err
	}

	link := resp.InitPoint
	if p.sandbox && resp.SandboxInitPoint != "" {
		link = resp.SandboxInitPoint
	}
	p.log.Info("preference created", "preference_id", resp.ID, "amount", amount.StringFixed(2))
	return link, nil
}
