package handler

import (
	"errors"
	"net/http"

	"cupid/internal/domain"
	"cupid/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	proposalSvc *service.ProposalService
}

func NewPaymentHandler(proposalSvc *service.ProposalService) *PaymentHandler {
	return &PaymentHandler{proposalSvc: proposalSvc}
}

// CreateOrder opens a gateway order for a new pending proposal and returns
// what the checkout client needs, including the public key id.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req struct {
		ValentineName   string `json:"valentine_name"`
		CustomMessage   string `json:"custom_message"`
		CharacterChoice string `json:"character_choice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.proposalSvc.CreatePendingOrder(c.Request.Context(), req.ValentineName, req.CustomMessage, req.CharacterChoice)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// Verify checks the gateway signature and activates the proposal.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req struct {
		OrderID    string `json:"order_id" binding:"required"`
		PaymentID  string `json:"payment_id" binding:"required"`
		Signature  string `json:"signature" binding:"required"`
		ProposalID string `json:"proposal_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	proposal, err := h.proposalSvc.VerifyAndActivate(req.OrderID, req.PaymentID, req.Signature, req.ProposalID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSignature):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment signature"})
		case errors.Is(err, domain.ErrProposalMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment does not belong to proposal"})
		case errors.Is(err, domain.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify payment"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Payment verified successfully",
		"proposal_id": proposal.PublicID,
		"proposal":    proposal,
	})
}
