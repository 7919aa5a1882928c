package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"underwriting_service/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

func TestJWTCapabilityTokens(t *testing.T) {
	tokens, err := NewJWTCapabilityTokens("s3cret")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	now := time.Now().UTC().Truncate(time.Second)
	in := interfaces.CapabilityClaims{
		ProposalID: "p-1",
		ArtifactID: "a-1",
		Amount:     decimal.RequireFromString("1020"),
		IssuedAt:   now,
		ExpiresAt:  now.Add(time.Hour),
	}

	t.Run("round trip", func(t *testing.T) {
		tok, err := tokens.Issue(in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		got, err := tokens.Verify(tok)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ProposalID != "p-1" || got.ArtifactID != "a-1" || got.Amount.StringFixed(2) != "1020.00" || !got.ExpiresAt.Equal(in.ExpiresAt) {
			t.Fatalf("unexpected claims: %+v", got)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, _ := NewJWTCapabilityTokens("other")
		tok, _ := other.Issue(in)
		if _, err := tokens.Verify(tok); err == nil {
			t.Fatalf("expected signature error")
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := in
		expired.IssuedAt = now.Add(-2 * time.Hour)
		expired.ExpiresAt = now.Add(-time.Hour)
		tok, _ := tokens.Issue(expired)
		if _, err := tokens.Verify(tok); !errors.Is(err, jwt.ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("missing secret", func(t *testing.T) {
		if _, err := NewJWTCapabilityTokens("  "); !errors.Is(err, ErrMissingTokenSecret) {
			t.Fatalf("expected ErrMissingTokenSecret, got %v", err)
		}
	})
}

func TestWorkerLinkProvider(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			if r.Method != http.MethodPost || body["productName"] != "Motor" || body["amount"] != 1020.5 {
				t.Errorf("unexpected request: %s %v", r.Method, body)
			}
			_, _ = w.Write([]byte(`{"success":true,"payment_link":"https://pay.example/abc"}`))
		}))
		defer srv.Close()

		p, err := NewWorkerLinkProvider(srv.URL, 5*time.Second, 0, nil)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		link, err := p.GenerateLink(context.Background(), "Motor", decimal.RequireFromString("1020.50"))
		if err != nil || link != "https://pay.example/abc" {
			t.Fatalf("unexpected link %q err=%v", link, err)
		}
	})

	t.Run("worker error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"form not found"}`))
		}))
		defer srv.Close()

		p, _ := NewWorkerLinkProvider(srv.URL, 5*time.Second, 0, nil)
		_, err := p.GenerateLink(context.Background(), "Motor", decimal.NewFromInt(1))
		if err == nil || !strings.Contains(err.Error(), "form not found") {
			t.Fatalf("expected worker error, got %v", err)
		}
	})

	t.Run("non json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer srv.Close()

		p, _ := NewWorkerLinkProvider(srv.URL, 5*time.Second, 0, nil)
		if _, err := p.GenerateLink(context.Background(), "Motor", decimal.NewFromInt(1)); err == nil {
			t.Fatalf("expected decode error")
		}
	})

	t.Run("missing url", func(t *testing.T) {
		if _, err := NewWorkerLinkProvider("", time.Second, 0, nil); !errors.Is(err, ErrWorkerNotConfigured) {
			t.Fatalf("expected ErrWorkerNotConfigured, got %v", err)
		}
	})
}

func TestMockLinkProviderIsDeterministic(t *testing.T) {
	p := MockLinkProvider{}
	a, _ := p.GenerateLink(context.Background(), "Motor", decimal.NewFromInt(10))
	b, _ := p.GenerateLink(context.Background(), "Motor", decimal.NewFromInt(10))
	c, _ := p.GenerateLink(context.Background(), "Motor", decimal.NewFromInt(11))
	if a != b || a == c || !strings.Contains(a, "amount=10.00") {
		t.Fatalf("unexpected links: %s %s %s", a, b, c)
	}
}

func TestQREncoder(t *testing.T) {
	png, err := QREncoder{}.Encode("https://portal.example/pay?t=abc")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Fatalf("expected png output")
	}
}

func TestNewLinkProvider(t *testing.T) {
	p, err := NewLinkProvider(LinkProviderOptions{Provider: ProviderWorker, Mock: true}, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := p.(MockLinkProvider); !ok {
		t.Fatalf("mock flag must win, got %T", p)
	}

	if _, err := NewLinkProvider(LinkProviderOptions{Provider: ProviderMercadoPago}, nil); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
	if _, err := NewLinkProvider(LinkProviderOptions{Provider: "carrier-pigeon"}, nil); err == nil {
		t.Fatalf("expected unknown provider error")
	}
}
