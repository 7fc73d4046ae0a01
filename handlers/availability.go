package handlers

import (
	"net/http"
	"time"

	"coachdesk/middleware"
	"coachdesk/models"
	"coachdesk/services/availability"
	"coachdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the availability settings endpoints.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAvailabilityHandler handles GET /api/scheduling/availability.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	orgID, ok := middleware.OrgIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not authenticated"})
		return
	}

	av, err := h.Service.GetOrCreate(c.Request.Context(), orgID)
	if err != nil {
		utils.GetLogger().Error("failed to fetch availability", zap.String("orgID", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": av})
}

// UpdateAvailabilityHandler handles PUT /api/scheduling/availability.
func (h *AvailabilityHandler) UpdateAvailabilityHandler(c *gin.Context) {
	orgID, ok := middleware.OrgIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not authenticated"})
		return
	}

	var upd models.AvailabilityUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	av, err := h.Service.Update(c.Request.Context(), orgID, upd)
	if err != nil {
		utils.GetLogger().Error("failed to update availability", zap.String("orgID", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": av})
}

// AddBlockedSlotHandler handles POST /api/scheduling/availability/blocked-slots.
func (h *AvailabilityHandler) AddBlockedSlotHandler(c *gin.Context) {
	orgID, ok := middleware.OrgIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not authenticated"})
		return
	}

	var body struct {
		Start  time.Time `json:"start" binding:"required"`
		End    time.Time `json:"end" binding:"required"`
		Reason string    `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}
	if !body.End.After(body.Start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be after start"})
		return
	}

	av, err := h.Service.AddBlockedSlot(c.Request.Context(), orgID, models.BlockedSlot{
		Start:  body.Start,
		End:    body.End,
		Reason: body.Reason,
	})
	if err != nil {
		utils.GetLogger().Error("failed to add blocked slot", zap.String("orgID", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add blocked slot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": av})
}

// RemoveBlockedSlotHandler handles DELETE /api/scheduling/availability/blocked-slots/:blockID.
func (h *AvailabilityHandler) RemoveBlockedSlotHandler(c *gin.Context) {
	orgID, ok := middleware.OrgIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not authenticated"})
		return
	}

	blockID := c.Param("blockID")
	if blockID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "blockID is required"})
		return
	}

	av, err := h.Service.RemoveBlockedSlot(c.Request.Context(), orgID, blockID)
	if err != nil {
		utils.GetLogger().Error("failed to remove blocked slot", zap.String("orgID", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove blocked slot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": av})
}
