package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

type Config struct {
	Port    int
	LogMode string
	// LogHashSalt salts hashed log fields such as auth_code.
	LogHashSalt string

	StoreDriver           string
	ProposalsTable        string
	PaymentArtifactsTable string
	AWSRegion             string
	DynamoDBEndpoint      string
	StoreTimeout          time.Duration

	RedisAddr      string
	IdempotencyTTL time.Duration

	PaymentLinkProvider  string
	PaymentLinkWorkerURL string
	PaymentLinkTimeout   time.Duration
	PaymentLinkRate      float64
	MercadoPagoToken     string
	PaymentGatewayMock   bool

	CustomerPortalURL        string
	PaymentTokenSecret       string
	PaymentTokenTTL          time.Duration
	AuthCodeLength           int
	PolicyIssueBeforePayment bool

	CORSAllowOrigins []string

	OTelEnabled     bool
	OTelEndpoint    string
	OTelServiceName string
}

// Load reads the environment. Every malformed value is reported, not just the first.
func Load() (Config, error) {
	var errs []error
	getInt := func(key string, def int) int {
		val := strings.TrimSpace(os.Getenv(key))
		if val == "" {
			return def
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s=%q", key, val))
			return def
		}
		return n
	}
	getFloat := func(key string, def float64) float64 {
		val := strings.TrimSpace(os.Getenv(key))
		if val == "" {
			return def
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s=%q", key, val))
			return def
		}
		return f
	}
	getBool := func(key string, def bool) bool {
		val := strings.TrimSpace(os.Getenv(key))
		if val == "" {
			return def
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s=%q", key, val))
			return def
		}
		return b
	}
	getDuration := func(key string, def time.Duration) time.Duration {
		val := strings.TrimSpace(os.Getenv(key))
		if val == "" {
			return def
		}
		d, err := time.ParseDuration(val)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s=%q", key, val))
			return def
		}
		return d
	}

	cfg := Config{
		Port:        getInt("PORT", 8080),
		LogMode:     getenvDefault("LOG_MODE", "prod"),
		LogHashSalt: os.Getenv("LOG_HASH_SALT"),

		StoreDriver:           strings.ToLower(getenvDefault("STORE_DRIVER", StoreDynamoDB)),
		ProposalsTable:        getenvDefault("PROPOSALS_TABLE", "proposals"),
		PaymentArtifactsTable: getenvDefault("PAYMENT_ARTIFACTS_TABLE", "payment_artifacts"),
		AWSRegion:             getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:      os.Getenv("DYNAMODB_ENDPOINT"),
		StoreTimeout:          getDuration("STORE_TIMEOUT", 5*time.Second),

		RedisAddr:      os.Getenv("REDIS_ADDR"),
		IdempotencyTTL: getDuration("IDEMPOTENCY_TTL", 24*time.Hour),

		PaymentLinkProvider:  strings.ToLower(getenvDefault("PAYMENT_LINK_PROVIDER", "worker")),
		PaymentLinkWorkerURL: os.Getenv("PAYMENT_LINK_WORKER_URL"),
		PaymentLinkTimeout:   getDuration("PAYMENT_LINK_TIMEOUT", 20*time.Second),
		PaymentLinkRate:      getFloat("PAYMENT_LINK_RATE", 1),
		MercadoPagoToken:     os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:   getBool("PAYMENT_GATEWAY_MOCK", false),

		CustomerPortalURL:        getenvDefault("CUSTOMER_PORTAL_URL", "http://localhost:3000"),
		PaymentTokenSecret:       os.Getenv("PAYMENT_TOKEN_SECRET"),
		PaymentTokenTTL:          getDuration("PAYMENT_TOKEN_TTL", 72*time.Hour),
		AuthCodeLength:           getInt("AUTH_CODE_LENGTH", 6),
		PolicyIssueBeforePayment: getBool("POLICY_ISSUE_BEFORE_PAYMENT", false),

		CORSAllowOrigins: splitList(getenvDefault("CORS_ALLOW_ORIGINS", "*")),

		OTelEnabled:     getBool("OTEL_ENABLED", false),
		OTelEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTelServiceName: getenvDefault("OTEL_SERVICE_NAME", "underwriting-service"),
	}

	switch cfg.StoreDriver {
	case StoreDynamoDB, StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("invalid STORE_DRIVER=%q", cfg.StoreDriver))
	}
	if cfg.AuthCodeLength < 4 {
		errs = append(errs, fmt.Errorf("AUTH_CODE_LENGTH must be >= 4, got %d", cfg.AuthCodeLength))
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = 5 * time.Second
	}
	if cfg.PaymentLinkTimeout <= 0 {
		cfg.PaymentLinkTimeout = 20 * time.Second
	}
	if cfg.PaymentTokenTTL <= 0 {
		cfg.PaymentTokenTTL = 72 * time.Hour
	}
	return cfg, errors.Join(errs...)
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
