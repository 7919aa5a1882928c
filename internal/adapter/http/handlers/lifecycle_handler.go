package handlers

import (
	"net/http"

	request "underwriting_service/internal/adapter/http/dto/request"
	response "underwriting_service/internal/adapter/http/dto/response"
	"underwriting_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LifecycleHandler struct {
	usecase usecase.ILifecycleUseCase
}

func NewLifecycleHandler(uc usecase.ILifecycleUseCase) *LifecycleHandler {
	return &LifecycleHandler{usecase: uc}
}

// IssuePolicy godoc
// @Summary Issue the policy number
// @Tags lifecycle
// @Produce json
// @Param id path string true "Proposal id"
// @Success 200 {object} response.PolicyResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/proposals/{id}/policy [post]
func (h *LifecycleHandler) IssuePolicy(c *gin.Context) {
	p, err := h.usecase.IssuePolicy(c.Request.Context(), c.Param("id"), operator(c))
	if err != nil {
		writeError(c, mapUnderwritingError(err))
		return
	}
	c.JSON(http.StatusOK, response.PolicyResponse{ProposalID: p.ID, PolicyNo: p.PolicyNo, Status: string(p.Status)})
}

// UpdateLifecycle godoc
// @Summary Advance a proposal past underwriting
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param id path string true "Proposal id"
// @Param payload body request.LifecycleRequest true "Target status"
// @Success 200 {object} response.LifecycleResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/proposals/{id}/lifecycle [post]
func (h *LifecycleHandler) UpdateLifecycle(c *gin.Context) {
	var payload request.LifecycleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	p, err := h.usecase.UpdateLifecycle(c.Request.Context(), c.Param("id"), payload.Target(), operator(c))
	if err != nil {
		writeError(c, mapUnderwritingError(err))
		return
	}
	c.JSON(http.StatusOK, response.LifecycleResponse{Success: true, ProposalID: p.ID, Status: string(p.Status), Version: p.Version})
}
