package handler

import (
	"net/http"
	"time"

	"cupid/internal/models"
	"cupid/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StatusHandler struct {
	statusRepo *repository.StatusCheckRepository
}

func NewStatusHandler(statusRepo *repository.StatusCheckRepository) *StatusHandler {
	return &StatusHandler{statusRepo: statusRepo}
}

func (h *StatusHandler) Create(c *gin.Context) {
	var req struct {
		ClientName string `json:"client_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	check := &models.StatusCheck{
		PublicID:   uuid.New().String(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := h.statusRepo.Create(check); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record status check"})
		return
	}
	c.JSON(http.StatusOK, check)
}

func (h *StatusHandler) List(c *gin.Context) {
	checks, err := h.statusRepo.List(1000)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list status checks"})
		return
	}
	c.JSON(http.StatusOK, checks)
}
