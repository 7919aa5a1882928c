package handlers

import (
	"net/http"
	"strconv"
	"strings"

	request "underwriting_service/internal/adapter/http/dto/request"
	response "underwriting_service/internal/adapter/http/dto/response"
	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProposalHandler serves intake, the operator queues and pre-decision record edits.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
	log     *logger.Logger
}

func NewProposalHandler(uc usecase.IProposalUseCase, log *logger.Logger) *ProposalHandler {
	return &ProposalHandler{usecase: uc, log: logger.OrNop(log).Component("proposal.handler")}
}

// CreateProposal godoc
// @Summary Submit a proposal for underwriting
// @Tags proposals
// @Accept json
// @Produce json
// @Param payload body request.CreateProposalRequest true "Proposal"
// @Success 201 {object} response.ProposalDetailResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /v1/proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.CreateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	detail, err := h.usecase.Create(c.Request.Context(), payload.ToInput(operator(c)))
	if err != nil {
		h.fail(c, "create", "", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDetail(detail))
}

// GetPendingProposals godoc
// @Summary Proposals awaiting a decision, oldest first
// @Tags proposals
// @Produce json
// @Success 200 {array} response.ProposalSummaryResponse
// @Router /v1/proposals/pending [get]
func (h *ProposalHandler) GetPendingProposals(c *gin.Context) {
	list, err := h.usecase.GetPending(c.Request.Context())
	if err != nil {
		h.fail(c, "pending", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSummaries(list))
}

// ListProposals godoc
// @Summary Proposals in one status
// @Tags proposals
// @Produce json
// @Param status query string true "Lifecycle status"
// @Success 200 {array} response.ProposalSummaryResponse
// @Failure 422 {object} pkg.HTTPError
// @Router /v1/proposals [get]
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	if status == "" {
		h.GetPendingProposals(c)
		return
	}
	list, err := h.usecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		h.fail(c, "list", "", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSummaries(list))
}

// GetProposalDetail godoc
// @Summary Full proposal with recomputed premiums
// @Tags proposals
// @Produce json
// @Param id path string true "Proposal id"
// @Success 200 {object} response.ProposalDetailResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/proposals/{id} [get]
func (h *ProposalHandler) GetProposalDetail(c *gin.Context) {
	id := c.Param("id")
	detail, err := h.usecase.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "detail", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDetail(detail))
}

// UpdateVehicle godoc
// @Summary Replace the vehicle record
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path string true "Proposal id"
// @Param payload body request.UpdateVehicleRequest true "Vehicle"
// @Success 200 {object} response.ProposalDetailResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/proposals/{id}/vehicle [put]
func (h *ProposalHandler) UpdateVehicle(c *gin.Context) {
	id := c.Param("id")
	var payload request.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	detail, err := h.usecase.UpdateVehicle(c.Request.Context(), id, payload.Version, payload.Vehicle.ToRecord())
	if err != nil {
		h.fail(c, "update-vehicle", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDetail(detail))
}

// UpdatePersons godoc
// @Summary Replace owner, proposer and insured records
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path string true "Proposal id"
// @Param payload body request.UpdatePersonsRequest true "Persons"
// @Success 200 {object} response.ProposalDetailResponse
// @Router /v1/proposals/{id}/persons [put]
func (h *ProposalHandler) UpdatePersons(c *gin.Context) {
	id := c.Param("id")
	var payload request.UpdatePersonsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	detail, err := h.usecase.UpdatePersons(c.Request.Context(), id, payload.Version, payload.ToInput())
	if err != nil {
		h.fail(c, "update-persons", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDetail(detail))
}

// AddCoverage godoc
// @Summary Add a coverage line
// @Tags coverages
// @Accept json
// @Produce json
// @Param id path string true "Proposal id"
// @Param payload body request.CoverageEditRequest true "Coverage"
// @Success 200 {object} response.ProposalDetailResponse
// @Router /v1/proposals/{id}/coverages [post]
func (h *ProposalHandler) AddCoverage(c *gin.Context) {
	id := c.Param("id")
	var payload request.CoverageEditRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	detail, err := h.usecase.AddCoverage(c.Request.Context(), id, payload.Version, payload.Coverage.ToLine())
	if err != nil {
		h.fail(c, "add-coverage", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDetail(detail))
}

// UpdateCoverage godoc
// @Summary Replace a coverage line
// @Tags coverages
// @Accept json
// @Produce json
// @Param id path string true "Proposal id"
// @Param code path string true "Coverage code"
// @Param payload body request.CoverageEditRequest true "Coverage"
// @Success 200 {object} response.ProposalDetailResponse
// @Router /v1/proposals/{id}/coverages/{code} [put]
func (h *ProposalHandler) UpdateCoverage(c *gin.Context) {
	id := c.Param("id")
	var payload request.CoverageEditRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	detail, err := h.usecase.UpdateCoverage(c.Request.Context(), id, payload.Version, c.Param("code"), payload.Coverage.ToLine())
	if err != nil {
		h.fail(c, "update-coverage", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDetail(detail))
}

// RemoveCoverage godoc
// @Summary Remove a coverage line
// @Tags coverages
// @Produce json
// @Param id path string true "Proposal id"
// @Param code path string true "Coverage code"
// @Param version query int true "Proposal version"
// @Success 200 {object} response.ProposalDetailResponse
// @Router /v1/proposals/{id}/coverages/{code} [delete]
func (h *ProposalHandler) RemoveCoverage(c *gin.Context) {
	id := c.Param("id")
	version, err := strconv.ParseInt(c.Query("version"), 10, 64)
	if err != nil || version <= 0 {
		writeError(c, errInvalidRequest)
		return
	}
	detail, err := h.usecase.RemoveCoverage(c.Request.Context(), id, version, c.Param("code"))
	if err != nil {
		h.fail(c, "remove-coverage", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDetail(detail))
}

func (h *ProposalHandler) fail(c *gin.Context, op, id string, err error) {
	appErr := mapUnderwritingError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("request failed", "op", op, "proposal_id", id, "error", err)
	} else {
		h.log.Debug("request rejected", "op", op, "proposal_id", id, "code", appErr.Code)
	}
	writeError(c, appErr)
}
