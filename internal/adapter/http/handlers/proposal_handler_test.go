package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"underwriting_service/internal/adapter/http/handlers/mocks"
	"underwriting_service/internal/domain/entities"
	"underwriting_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func proposalRouter(t *testing.T) (*gin.Engine, *mocks.MockIProposalUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProposalUseCase(ctrl)
	h := NewProposalHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/proposals", h.CreateProposal)
	r.GET("/v1/proposals", h.ListProposals)
	r.GET("/v1/proposals/pending", h.GetPendingProposals)
	r.GET("/v1/proposals/:id", h.GetProposalDetail)
	r.PUT("/v1/proposals/:id/vehicle", h.UpdateVehicle)
	r.PUT("/v1/proposals/:id/persons", h.UpdatePersons)
	r.POST("/v1/proposals/:id/coverages", h.AddCoverage)
	r.PUT("/v1/proposals/:id/coverages/:code", h.UpdateCoverage)
	r.DELETE("/v1/proposals/:id/coverages/:code", h.RemoveCoverage)
	return r, uc
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(operatorHeader, "uw-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func detailFixture(id string) usecase.ProposalDetail {
	return usecase.ProposalDetail{
		Proposal: entities.Proposal{ID: id, Status: entities.StatusSubmitted, Version: 2},
		Total:    decimal.NewFromInt(1020),
	}
}

func TestProposalHandler_CreateProposal(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := proposalRouter(t)
		w := do(r, http.MethodPost, "/v1/proposals", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "INVALID_REQUEST" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("validation error lists fields", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.ProposalDetail{}, &usecase.ValidationError{Fields: []usecase.FieldError{
			{Field: "vehicle.plate", Reason: "required"},
			{Field: "owner.name", Reason: "required"},
		}})

		w := do(r, http.MethodPost, "/v1/proposals", `{"vehicle":{}}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		details, _ := decodeBody(t, w)["details"].(map[string]any)
		fields, _ := details["fields"].([]any)
		if len(fields) != 2 {
			t.Fatalf("expected 2 fields, got %s", w.Body.String())
		}
	})

	t.Run("success uses operator header as actor", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateProposalInput) (usecase.ProposalDetail, error) {
			if in.Actor != "uw-7" || in.Vehicle.Plate != "A1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return detailFixture("p-1"), nil
		})

		w := do(r, http.MethodPost, "/v1/proposals", `{"vehicle":{"plate":"a1"},"owner":{"name":"Li"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "p-1" || body["totalPremium"] != "1020.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.ProposalDetail{}, usecase.ErrProposalAlreadyExists)
		w := do(r, http.MethodPost, "/v1/proposals", `{}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestProposalHandler_Queues(t *testing.T) {
	list := []usecase.ProposalSummary{{ID: "p-1", Status: entities.StatusSubmitted, Total: decimal.NewFromFloat(10.5)}}

	t.Run("pending", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().GetPending(gomock.Any()).Return(list, nil)
		w := do(r, http.MethodGet, "/v1/proposals/pending", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if len(out) != 1 || out[0]["totalPremium"] != "10.50" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty queue is an array", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().GetPending(gomock.Any()).Return(nil, nil)
		w := do(r, http.MethodGet, "/v1/proposals/pending", "")
		if w.Body.String() != "[]" {
			t.Fatalf("expected [], got %s", w.Body.String())
		}
	})

	t.Run("by status", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().ListByStatus(gomock.Any(), "PAID").Return(list, nil)
		w := do(r, http.MethodGet, "/v1/proposals?status=PAID", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().ListByStatus(gomock.Any(), "NOPE").Return(nil, &usecase.ValidationError{Fields: []usecase.FieldError{{Field: "status", Reason: "unknown"}}})
		w := do(r, http.MethodGet, "/v1/proposals?status=NOPE", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("store unavailable", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().GetPending(gomock.Any()).Return(nil, fmt.Errorf("%w: timeout", usecase.ErrStoreUnavailable))
		w := do(r, http.MethodGet, "/v1/proposals/pending", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestProposalHandler_GetProposalDetail(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().GetDetail(gomock.Any(), "missing").Return(usecase.ProposalDetail{}, usecase.ErrProposalNotFound)
		w := do(r, http.MethodGet, "/v1/proposals/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().GetDetail(gomock.Any(), "p-1").Return(usecase.ProposalDetail{}, errors.New("boom"))
		w := do(r, http.MethodGet, "/v1/proposals/p-1", "")
		if w.Code != http.StatusInternalServerError || decodeBody(t, w)["code"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().GetDetail(gomock.Any(), "p-1").Return(detailFixture("p-1"), nil)
		w := do(r, http.MethodGet, "/v1/proposals/p-1", "")
		if w.Code != http.StatusOK || decodeBody(t, w)["version"] != float64(2) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestProposalHandler_Edits(t *testing.T) {
	t.Run("vehicle requires version", func(t *testing.T) {
		r, _ := proposalRouter(t)
		w := do(r, http.MethodPut, "/v1/proposals/p-1/vehicle", `{"vehicle":{"plate":"a1"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("vehicle stale version", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().UpdateVehicle(gomock.Any(), "p-1", int64(1), gomock.Any()).Return(usecase.ProposalDetail{}, usecase.ErrVersionConflict)
		w := do(r, http.MethodPut, "/v1/proposals/p-1/vehicle", `{"version":1,"vehicle":{"plate":"a1"}}`)
		if w.Code != http.StatusConflict || decodeBody(t, w)["code"] != "VERSION_CONFLICT" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("persons after decision", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().UpdatePersons(gomock.Any(), "p-1", int64(3), gomock.Any()).
			Return(usecase.ProposalDetail{}, &usecase.TransitionError{Current: entities.StatusRejected, Err: usecase.ErrInvalidState})
		w := do(r, http.MethodPut, "/v1/proposals/p-1/persons", `{"version":3,"insured":{"name":"Wang"}}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		details, _ := decodeBody(t, w)["details"].(map[string]any)
		if details["current"] != "REJECTED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("add coverage", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().AddCoverage(gomock.Any(), "p-1", int64(2), gomock.Any()).DoAndReturn(func(_ any, _ string, _ int64, line entities.CoverageLine) (usecase.ProposalDetail, error) {
			if line.Code != "GLS" || line.BasePremium.StringFixed(2) != "50.00" {
				t.Fatalf("unexpected line: %+v", line)
			}
			return detailFixture("p-1"), nil
		})
		w := do(r, http.MethodPost, "/v1/proposals/p-1/coverages", `{"version":2,"coverage":{"code":"GLS","name":"Glass","basePremium":"50"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update unknown coverage", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().UpdateCoverage(gomock.Any(), "p-1", int64(2), "XXX", gomock.Any()).Return(usecase.ProposalDetail{}, usecase.ErrCoverageNotFound)
		w := do(r, http.MethodPut, "/v1/proposals/p-1/coverages/XXX", `{"version":2,"coverage":{"code":"XXX"}}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("remove needs numeric version", func(t *testing.T) {
		r, _ := proposalRouter(t)
		w := do(r, http.MethodDelete, "/v1/proposals/p-1/coverages/TPL?version=abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("remove", func(t *testing.T) {
		r, uc := proposalRouter(t)
		uc.EXPECT().RemoveCoverage(gomock.Any(), "p-1", int64(4), "TPL").Return(detailFixture("p-1"), nil)
		w := do(r, http.MethodDelete, "/v1/proposals/p-1/coverages/TPL?version=4", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
