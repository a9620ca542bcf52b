package handler

import (
	"net/http"

	"cupid/internal/service"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingSvc *service.PricingService
}

func NewPricingHandler(pricingSvc *service.PricingService) *PricingHandler {
	return &PricingHandler{pricingSvc: pricingSvc}
}

func (h *PricingHandler) Get(c *gin.Context) {
	p := h.pricingSvc.Details()
	c.JSON(http.StatusOK, gin.H{
		"amount":        p.Amount,
		"currency":      p.Currency,
		"display_price": p.DisplayPrice,
	})
}

// Update upserts the singleton price. Admin-only; amount is in the smallest
// currency unit (e.g. 14900 for ₹149).
func (h *PricingHandler) Update(c *gin.Context) {
	var req struct {
		Amount       int64  `json:"amount" binding:"required"`
		DisplayPrice string `json:"display_price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.pricingSvc.Update(req.Amount, req.DisplayPrice); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update pricing"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"amount":        req.Amount,
		"display_price": req.DisplayPrice,
	})
}
