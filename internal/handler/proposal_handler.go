package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cupid/internal/domain"
	"cupid/internal/service"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	proposalSvc *service.ProposalService
}

func NewProposalHandler(proposalSvc *service.ProposalService) *ProposalHandler {
	return &ProposalHandler{proposalSvc: proposalSvc}
}

// Create makes a free, already-paid proposal (legacy zero-cost path).
func (h *ProposalHandler) Create(c *gin.Context) {
	var req struct {
		ValentineName   string `json:"valentine_name"`
		CustomMessage   string `json:"custom_message"`
		CharacterChoice string `json:"character_choice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	proposal, err := h.proposalSvc.CreateFreeProposal(req.ValentineName, req.CustomMessage, req.CharacterChoice)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create proposal"})
		return
	}
	c.JSON(http.StatusCreated, proposal)
}

func (h *ProposalHandler) Get(c *gin.Context) {
	proposal, err := h.proposalSvc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "proposal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load proposal"})
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// Respond records the recipient's accept or decline.
func (h *ProposalHandler) Respond(c *gin.Context) {
	var req struct {
		Accepted *bool `json:"accepted" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	proposal, err := h.proposalSvc.Respond(c.Param("id"), *req.Accepted)
	if err != nil {
		if errors.Is(err, domain.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "proposal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update proposal"})
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func (h *ProposalHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	proposals, err := h.proposalSvc.List(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list proposals"})
		return
	}
	c.JSON(http.StatusOK, proposals)
}
