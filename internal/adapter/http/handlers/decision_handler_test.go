package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"underwriting_service/internal/adapter/http/handlers/mocks"
	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/usecase"
	mock_interfaces "underwriting_service/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func decisionRouter(t *testing.T) (*gin.Engine, *mocks.MockIDecisionUseCase, *mock_interfaces.MockIQREncoder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDecisionUseCase(ctrl)
	qr := mock_interfaces.NewMockIQREncoder(ctrl)
	h := NewDecisionHandler(uc, qr, nil)

	r := gin.New()
	r.POST("/v1/proposals/:id/decision", h.SubmitDecision)
	return r, uc, qr
}

func acceptedResult() usecase.DecisionResult {
	return usecase.DecisionResult{
		Proposal: entities.Proposal{ID: "p-1", Status: entities.StatusUnderwritingConfirmed, Version: 2},
		Decision: entities.Decision{Acceptance: entities.AcceptanceAccept, RiskLevel: entities.RiskLow, FinalPremium: decimal.NewFromInt(1020)},
		Artifact: &entities.PaymentArtifact{AuthCode: "ZX81QP", QRPayload: "http://portal/pay?t=abc", Amount: decimal.NewFromInt(1020)},
	}
}

func TestDecisionHandler_SubmitDecision(t *testing.T) {
	t.Run("acceptance required", func(t *testing.T) {
		r, _, _ := decisionRouter(t)
		w := do(r, http.MethodPost, "/v1/proposals/p-1/decision", `{"riskLevel":"LOW"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("version required", func(t *testing.T) {
		r, _, _ := decisionRouter(t)
		w := do(r, http.MethodPost, "/v1/proposals/p-1/decision", `{"acceptance":"ACCEPT","riskLevel":"LOW"}`)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_REQUEST" {
			t.Fatalf("expected 400 INVALID_REQUEST, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("accept renders qr image", func(t *testing.T) {
		r, uc, qr := decisionRouter(t)
		uc.EXPECT().Decide(gomock.Any(), "p-1", gomock.Any()).DoAndReturn(func(_ any, _ string, in usecase.DecisionInput) (usecase.DecisionResult, error) {
			if in.Underwriter != "uw-7" || in.Acceptance != "ACCEPT" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return acceptedResult(), nil
		})
		qr.EXPECT().Encode("http://portal/pay?t=abc").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		w := do(r, http.MethodPost, "/v1/proposals/p-1/decision", `{"acceptance":"ACCEPT","riskLevel":"LOW","version":1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["success"] != true || body["authCode"] != "ZX81QP" || body["finalPremium"] != "1020.00" || body["status"] != "UNDERWRITING_CONFIRMED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if img, _ := body["qrImage"].(string); !strings.HasPrefix(img, "data:image/png;base64,") {
			t.Fatalf("unexpected qr image: %v", body["qrImage"])
		}
	})

	t.Run("qr failure still returns the decision", func(t *testing.T) {
		r, uc, qr := decisionRouter(t)
		uc.EXPECT().Decide(gomock.Any(), "p-1", gomock.Any()).Return(acceptedResult(), nil)
		qr.EXPECT().Encode(gomock.Any()).Return(nil, errors.New("too long"))

		w := do(r, http.MethodPost, "/v1/proposals/p-1/decision", `{"acceptance":"ACCEPT","version":1}`)
		body := decodeBody(t, w)
		if w.Code != http.StatusOK || body["qrImage"] != nil || body["qrPayload"] != "http://portal/pay?t=abc" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("reject has no artifact", func(t *testing.T) {
		r, uc, _ := decisionRouter(t)
		uc.EXPECT().Decide(gomock.Any(), "p-1", gomock.Any()).Return(usecase.DecisionResult{
			Proposal: entities.Proposal{ID: "p-1", Status: entities.StatusRejected},
			Decision: entities.Decision{Acceptance: entities.AcceptanceReject, FinalPremium: decimal.Zero},
		}, nil)

		w := do(r, http.MethodPost, "/v1/proposals/p-1/decision", `{"acceptance":"REJECT","rationale":"fraud","version":1}`)
		body := decodeBody(t, w)
		if body["status"] != "REJECTED" || body["authCode"] != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("already decided", func(t *testing.T) {
		r, uc, _ := decisionRouter(t)
		uc.EXPECT().Decide(gomock.Any(), "p-1", gomock.Any()).
			Return(usecase.DecisionResult{}, &usecase.TransitionError{Current: entities.StatusUnderwritingConfirmed, Target: entities.StatusUnderwritingConfirmed, Err: usecase.ErrInvalidState})
		w := do(r, http.MethodPost, "/v1/proposals/p-1/decision", `{"acceptance":"ACCEPT","version":1}`)
		if w.Code != http.StatusConflict || decodeBody(t, w)["code"] != "INVALID_STATE" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("zero premium needs confirmation", func(t *testing.T) {
		r, uc, _ := decisionRouter(t)
		uc.EXPECT().Decide(gomock.Any(), "p-1", gomock.Any()).Return(usecase.DecisionResult{}, usecase.ErrZeroPremiumUnconfirmed)
		w := do(r, http.MethodPost, "/v1/proposals/p-1/decision", `{"acceptance":"ACCEPT","version":1}`)
		if w.Code != http.StatusUnprocessableEntity || decodeBody(t, w)["code"] != "ZERO_PREMIUM_CONFIRMATION_REQUIRED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("code collision is retryable", func(t *testing.T) {
		r, uc, _ := decisionRouter(t)
		uc.EXPECT().Decide(gomock.Any(), "p-1", gomock.Any()).Return(usecase.DecisionResult{}, usecase.ErrAuthCodeCollision)
		w := do(r, http.MethodPost, "/v1/proposals/p-1/decision", `{"acceptance":"ACCEPT","version":1}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
