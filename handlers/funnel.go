package handlers

import (
	"errors"
	"net/http"

	"coachdesk/models"
	"coachdesk/services/scheduling"
	"coachdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FunnelHandler serves the unauthenticated funnel scheduling endpoints. The
// organization is resolved from the intake config, never from a session.
type FunnelHandler struct {
	Service scheduling.SchedulingService
}

// NewFunnelHandler constructs a FunnelHandler.
func NewFunnelHandler(svc scheduling.SchedulingService) *FunnelHandler {
	return &FunnelHandler{Service: svc}
}

// GetFunnelSlotsHandler handles GET /api/funnel/scheduling/slots.
func (h *FunnelHandler) GetFunnelSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	configID := c.Query("intakeConfigId")
	if configID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intakeConfigId is required"})
		return
	}

	start, end, ok := parseSlotRange(c)
	if !ok {
		return
	}

	result, err := h.Service.GetFunnelSlots(c.Request.Context(), configID, start, end)
	if err != nil {
		if errors.Is(err, scheduling.ErrIntakeConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Intake config not found"})
			return
		}
		logger.Error("failed to compute funnel slots", zap.String("intakeConfigID", configID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute available slots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slots":    result.Slots,
		"timezone": result.Timezone,
	})
}

// BookFunnelSlotHandler handles POST /api/funnel/scheduling/book.
func (h *FunnelHandler) BookFunnelSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.FunnelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	event, err := h.Service.BookFunnelSlot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrIntakeConfigNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Intake config not found"})
		case errors.Is(err, scheduling.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Requested slot is no longer available"})
		default:
			logger.Error("funnel booking failed", zap.String("intakeConfigID", req.IntakeConfigID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book slot"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}
