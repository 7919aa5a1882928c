package handlers

import (
	"encoding/base64"
	"net/http"

	request "underwriting_service/internal/adapter/http/dto/request"
	response "underwriting_service/internal/adapter/http/dto/response"
	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/internal/usecase"
	"underwriting_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// DecisionHandler records underwriting decisions.
type DecisionHandler struct {
	usecase usecase.IDecisionUseCase
	qr      interfaces.IQREncoder
	log     *logger.Logger
}

func NewDecisionHandler(uc usecase.IDecisionUseCase, qr interfaces.IQREncoder, log *logger.Logger) *DecisionHandler {
	return &DecisionHandler{usecase: uc, qr: qr, log: logger.OrNop(log).Component("decision.handler")}
}

// SubmitDecision godoc
// @Summary Accept or reject a submitted proposal
// @Description ACCEPT mints the one-time payment code and QR link in the same write.
// @Tags decisions
// @Accept json
// @Produce json
// @Param id path string true "Proposal id"
// @Param X-Operator-ID header string false "Operator id"
// @Param payload body request.DecisionRequest true "Decision"
// @Success 200 {object} response.DecisionResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /v1/proposals/{id}/decision [post]
func (h *DecisionHandler) SubmitDecision(c *gin.Context) {
	id := c.Param("id")
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	res, err := h.usecase.Decide(c.Request.Context(), id, payload.ToInput(operator(c)))
	if err != nil {
		appErr := mapUnderwritingError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Error("decision failed", "proposal_id", id, "error", err)
		}
		writeError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.FromDecisionResult(res, h.qrImage(id, res)))
}

// qrImage renders the payload as a data URL. A render failure leaves the image out;
// the console can still fetch it from the artifact QR route.
func (h *DecisionHandler) qrImage(id string, res usecase.DecisionResult) string {
	if res.Artifact == nil || h.qr == nil {
		return ""
	}
	png, err := h.qr.Encode(res.Artifact.QRPayload)
	if err != nil {
		h.log.Warn("qr render failed", "proposal_id", id, "error", err)
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
