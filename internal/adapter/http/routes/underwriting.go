package routes

import (
	"underwriting_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
	PathPayments  = "/payments"
)

// Handlers groups everything the /v1 routes dispatch to.
type Handlers struct {
	Proposals *handlers.ProposalHandler
	Decisions *handlers.DecisionHandler
	Lifecycle *handlers.LifecycleHandler
	Payments  *handlers.PaymentHandler
}

func addProposalRoutes(rg *gin.RouterGroup, h Handlers) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", h.Proposals.CreateProposal)
		proposals.GET("", h.Proposals.ListProposals)
		proposals.GET("/pending", h.Proposals.GetPendingProposals)
		proposals.GET("/:id", h.Proposals.GetProposalDetail)

		// record edits, rejected once a decision exists
		proposals.PUT("/:id/vehicle", h.Proposals.UpdateVehicle)
		proposals.PUT("/:id/persons", h.Proposals.UpdatePersons)
		proposals.POST("/:id/coverages", h.Proposals.AddCoverage)
		proposals.PUT("/:id/coverages/:code", h.Proposals.UpdateCoverage)
		proposals.DELETE("/:id/coverages/:code", h.Proposals.RemoveCoverage)

		proposals.POST("/:id/decision", h.Decisions.SubmitDecision)
		proposals.POST("/:id/policy", h.Lifecycle.IssuePolicy)
		proposals.POST("/:id/lifecycle", h.Lifecycle.UpdateLifecycle)
		proposals.GET("/:id/artifact/qr.png", h.Payments.ArtifactQR)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h Handlers) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/link", h.Payments.GeneratePaymentLink)
		payments.POST("/consume", h.Payments.Consume)
		// customer portal, reached from the QR link
		payments.GET("/status", h.Payments.PaymentStatus)
	}
}
