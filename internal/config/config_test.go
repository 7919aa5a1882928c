package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "STORE_TIMEOUT", "CORS_ALLOW_ORIGINS", "PAYMENT_TOKEN_TTL", "AUTH_CODE_LENGTH"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != 8080 || cfg.StoreDriver != StoreDynamoDB || cfg.StoreTimeout != 5*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.PaymentTokenTTL != 72*time.Hour || cfg.AuthCodeLength != 6 || len(cfg.CORSAllowOrigins) != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("STORE_TIMEOUT", "750ms")
	t.Setenv("POLICY_ISSUE_BEFORE_PAYMENT", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://ops.example, https://uw.example ,")
	t.Setenv("PAYMENT_LINK_RATE", "0.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != 9090 || cfg.StoreDriver != StoreMemory || cfg.StoreTimeout != 750*time.Millisecond {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if !cfg.PolicyIssueBeforePayment || cfg.PaymentLinkRate != 0.5 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://uw.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigins)
	}
}

func TestLoadReportsEveryInvalidValue(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("STORE_TIMEOUT", "5 seconds")
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, key := range []string{"PORT", "STORE_TIMEOUT", "STORE_DRIVER"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected %s in %v", key, err)
		}
	}
}
