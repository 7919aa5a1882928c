package payments

import (
	"fmt"
	"strings"
	"time"

	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/internal/usecase/interfaces"
)

const (
	ProviderWorker      = "worker"
	ProviderMercadoPago = "mercadopago"
	ProviderMock        = "mock"
)

type LinkProviderOptions struct {
	Provider            string
	Mock                bool
	WorkerURL           string
	WorkerRatePerSecond float64
	Timeout             time.Duration
	MercadoPagoToken    string
}

// NewLinkProvider picks the payment link backend. Mock wins over the configured provider.
func NewLinkProvider(opts LinkProviderOptions, log *logger.Logger) (interfaces.IPaymentLinkProvider, error) {
	log = logger.OrNop(log)
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if opts.Mock || provider == ProviderMock {
		log.Info("payment link provider in mock mode")
		return MockLinkProvider{}, nil
	}
	switch provider {
	case "", ProviderWorker:
		return NewWorkerLinkProvider(opts.WorkerURL, opts.Timeout, opts.WorkerRatePerSecond, log)
	case ProviderMercadoPago:
		return NewMercadoPagoLinkProvider(opts.MercadoPagoToken, log)
	}
	return nil, fmt.Errorf("unknown PAYMENT_LINK_PROVIDER %q", opts.Provider)
}
