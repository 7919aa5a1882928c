package handlers

import (
	"errors"
	"net/http"
	"strings"

	"underwriting_service/internal/usecase"
	"underwriting_service/pkg"

	"github.com/gin-gonic/gin"
)

const operatorHeader = "X-Operator-ID"

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// operator identifies the console user acting on a proposal.
func operator(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(operatorHeader)); v != "" {
		return v
	}
	return "operator"
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapUnderwritingError(err error) *pkg.AppError {
	var terr *usecase.TransitionError
	if errors.As(err, &terr) {
		details := map[string]any{"current": string(terr.Current), "attempted": string(terr.Target)}
		if errors.Is(err, usecase.ErrIllegalTransition) {
			return pkg.NewDomainError("ILLEGAL_TRANSITION", "Transition not allowed from the current status", err, http.StatusConflict).WithDetails(details)
		}
		return pkg.NewDomainError("INVALID_STATE", "Operation not allowed in the current status", err, http.StatusConflict).WithDetails(details)
	}

	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return pkg.NewDomainError("VALIDATION_FAILED", "Validation failed", err, http.StatusUnprocessableEntity).
			WithDetails(map[string]any{"fields": verr.Fields})
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSAL_ID", "Invalid proposal id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCoverageNotFound):
		return pkg.NewDomainErrorSimple("COVERAGE_NOT_FOUND", "Coverage line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalAlreadyExists):
		return pkg.NewDomainErrorSimple("PROPOSAL_ALREADY_EXISTS", "Proposal already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Proposal was modified by another operator, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Transition not allowed from the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Operation not allowed in the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrZeroPremiumUnconfirmed):
		return pkg.NewDomainErrorSimple("ZERO_PREMIUM_CONFIRMATION_REQUIRED", "Total premium is zero, confirm explicitly to accept", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAuthCodeCollision):
		return pkg.NewDomainError("AUTH_CODE_COLLISION", "Could not allocate a payment code, retry", err, http.StatusServiceUnavailable)
	default:
		return mapPaymentError(err)
	}
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrArtifactNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_CODE_NOT_FOUND", "Payment code not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrArtifactAlreadyConsumed):
		return pkg.NewDomainErrorSimple("PAYMENT_CODE_ALREADY_USED", "Payment code already used", http.StatusConflict)
	case errors.Is(err, usecase.ErrArtifactInvalidated):
		return pkg.NewDomainErrorSimple("PAYMENT_CODE_INVALIDATED", "Payment code is no longer valid", http.StatusGone)
	case errors.Is(err, usecase.ErrInvalidPaymentToken):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_TOKEN", "Invalid or expired payment link", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentLinkUpstream):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment link provider failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentLinkUnavailable):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment link provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Storage temporarily unavailable, retry", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
