package handlers

import (
	"net/http"
	"strings"

	request "underwriting_service/internal/adapter/http/dto/request"
	response "underwriting_service/internal/adapter/http/dto/response"
	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the payment bridge to the operator console and the customer portal.
type PaymentHandler struct {
	usecase usecase.IPaymentBridgeUseCase
	log     *logger.Logger
}

func NewPaymentHandler(uc usecase.IPaymentBridgeUseCase, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, log: logger.OrNop(log).Component("payment.handler")}
}

// GeneratePaymentLink godoc
// @Summary Request a collection link from the payment provider
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body request.PaymentLinkRequest true "Link request"
// @Success 200 {object} response.PaymentLinkResponse
// @Failure 502 {object} pkg.HTTPError
// @Router /v1/payments/link [post]
func (h *PaymentHandler) GeneratePaymentLink(c *gin.Context) {
	var payload request.PaymentLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	res, err := h.usecase.GeneratePaymentLink(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapUnderwritingError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Error("payment link failed", "proposal_id", payload.ProposalID, "error", err)
		}
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentLink(res))
}

// Consume godoc
// @Summary Redeem a one-time payment code
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body request.ConsumeRequest true "Auth code"
// @Success 200 {object} response.ConsumeResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 410 {object} pkg.HTTPError
// @Router /v1/payments/consume [post]
func (h *PaymentHandler) Consume(c *gin.Context) {
	var payload request.ConsumeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	res, err := h.usecase.Consume(c.Request.Context(), payload.AuthCode)
	if err != nil {
		appErr := mapUnderwritingError(err)
		h.log.Info("payment code refused", "code", appErr.Code, "client_ip", c.ClientIP())
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromConsume(res))
}

// PaymentStatus godoc
// @Summary Resolve the QR link token for the customer portal
// @Tags payments
// @Produce json
// @Param t query string true "Capability token"
// @Success 200 {object} response.PaymentStatusResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/payments/status [get]
func (h *PaymentHandler) PaymentStatus(c *gin.Context) {
	tok := strings.TrimSpace(c.Query("t"))
	if tok == "" {
		writeError(c, mapUnderwritingError(usecase.ErrInvalidPaymentToken))
		return
	}
	view, err := h.usecase.ResolveToken(c.Request.Context(), tok)
	if err != nil {
		writeError(c, mapUnderwritingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentStatus(view))
}

// ArtifactQR godoc
// @Summary QR code PNG for the live payment artifact
// @Tags payments
// @Produce png
// @Param id path string true "Proposal id"
// @Success 200 {file} binary
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/proposals/{id}/artifact/qr.png [get]
func (h *PaymentHandler) ArtifactQR(c *gin.Context) {
	png, err := h.usecase.QRCode(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapUnderwritingError(err))
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}
