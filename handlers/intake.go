package handlers

import (
	"errors"
	"net/http"

	intakeRepo "coachdesk/database/repository/intake"
	"coachdesk/middleware"
	"coachdesk/models"
	"coachdesk/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// IntakeConfigHandler serves the authenticated intake config CRUD endpoints.
type IntakeConfigHandler struct {
	Repo intakeRepo.IntakeConfigRepository
}

// NewIntakeConfigHandler constructs an IntakeConfigHandler.
func NewIntakeConfigHandler(repo intakeRepo.IntakeConfigRepository) *IntakeConfigHandler {
	return &IntakeConfigHandler{Repo: repo}
}

// ListIntakeConfigsHandler handles GET /api/funnel/configs.
func (h *IntakeConfigHandler) ListIntakeConfigsHandler(c *gin.Context) {
	orgID, ok := middleware.OrgIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not authenticated"})
		return
	}

	configs, err := h.Repo.ListByOrg(c.Request.Context(), orgID)
	if err != nil {
		utils.GetLogger().Error("failed to list intake configs", zap.String("orgID", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list intake configs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"configs": configs})
}

// CreateIntakeConfigHandler handles POST /api/funnel/configs.
func (h *IntakeConfigHandler) CreateIntakeConfigHandler(c *gin.Context) {
	orgID, ok := middleware.OrgIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not authenticated"})
		return
	}

	var req models.IntakeConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	cfg := models.IntakeConfig{
		OrgID:              orgID,
		Name:               req.Name,
		DurationMinutes:    req.DurationMinutes,
		Active:             true,
		BufferMinutes:      req.BufferMinutes,
		MinNoticeHours:     req.MinNoticeHours,
		AdvanceBookingDays: req.AdvanceBookingDays,
	}
	if req.Active != nil {
		cfg.Active = *req.Active
	}

	if err := h.Repo.Create(c.Request.Context(), &cfg); err != nil {
		utils.GetLogger().Error("failed to create intake config", zap.String("orgID", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create intake config"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"config": cfg})
}

// UpdateIntakeConfigHandler handles PUT /api/funnel/configs/:configID.
func (h *IntakeConfigHandler) UpdateIntakeConfigHandler(c *gin.Context) {
	orgID, ok := middleware.OrgIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not authenticated"})
		return
	}

	configID := c.Param("configID")
	existing, err := h.Repo.GetByID(c.Request.Context(), configID)
	if err != nil || existing.OrgID != orgID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Intake config not found"})
		return
	}

	var req models.IntakeConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	existing.Name = req.Name
	existing.DurationMinutes = req.DurationMinutes
	existing.BufferMinutes = req.BufferMinutes
	existing.MinNoticeHours = req.MinNoticeHours
	existing.AdvanceBookingDays = req.AdvanceBookingDays
	if req.Active != nil {
		existing.Active = *req.Active
	}

	if err := h.Repo.Update(c.Request.Context(), *existing); err != nil {
		utils.GetLogger().Error("failed to update intake config", zap.String("orgID", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update intake config"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": existing})
}

// DeleteIntakeConfigHandler handles DELETE /api/funnel/configs/:configID.
func (h *IntakeConfigHandler) DeleteIntakeConfigHandler(c *gin.Context) {
	orgID, ok := middleware.OrgIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not authenticated"})
		return
	}

	configID := c.Param("configID")
	if err := h.Repo.Delete(c.Request.Context(), orgID, configID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Intake config not found"})
			return
		}
		utils.GetLogger().Error("failed to delete intake config", zap.String("orgID", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete intake config"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Intake config deleted"})
}
