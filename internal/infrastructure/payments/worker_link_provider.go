package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

var ErrWorkerNotConfigured = errors.New("payment link worker url not configured")

type workerRequest struct {
	ProductName string  `json:"productName"`
	Amount      float64 `json:"amount"`
}

type workerResponse struct {
	Success     bool   `json:"success"`
	PaymentLink string `json:"payment_link"`
	Error       string `json:"error"`
}

// WorkerLinkProvider calls the browser-automation worker that fills the insurer's
// collection form and returns the resulting payment URL.
//
// The worker drives a single browser, so calls are paced by a token bucket.
type WorkerLinkProvider struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

var _ interfaces.IPaymentLinkProvider = (*WorkerLinkProvider)(nil)

// NewWorkerLinkProvider builds the client. perSecond <= 0 disables pacing.
func NewWorkerLinkProvider(url string, timeout time.Duration, perSecond float64, log *logger.Logger) (*WorkerLinkProvider, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrWorkerNotConfigured
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if perSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
	return &WorkerLinkProvider{
		url: url,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		limiter: limiter,
		log:     logger.OrNop(log).Component("payment.worker"),
	}, nil
}

func (p *WorkerLinkProvider) GenerateLink(ctx context.Context, productName string, amount decimal.Decimal) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(workerRequest{ProductName: productName, Amount: amount.InexactFloat64()})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Error("worker request failed", "error", err)
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	var out workerResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("worker returned non-json body (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= 300 || out.Error != "" {
		msg := out.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		p.log.Warn("worker rejected request", "status", resp.StatusCode, "error", msg)
		return "", fmt.Errorf("worker status %d: %s", resp.StatusCode, msg)
	}
	if strings.TrimSpace(out.PaymentLink) == "" {
		return "", errors.New("worker returned no payment_link")
	}

	p.log.Info("worker produced payment link", "duration_ms", time.Since(started).Milliseconds())
	return out.PaymentLink, nil
}
