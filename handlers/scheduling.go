package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"coachdesk/middleware"
	"coachdesk/services/scheduling"
	"coachdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler serves the authenticated scheduling endpoints.
type SchedulingHandler struct {
	Service scheduling.SchedulingService
}

// NewSchedulingHandler constructs a SchedulingHandler.
func NewSchedulingHandler(svc scheduling.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{Service: svc}
}

// parseDateParam accepts ISO-8601 date or datetime strings.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// parseDurationParam parses a positive whole number of minutes. Trailing
// garbage is rejected.
func parseDurationParam(value string) (int, error) {
	minutes, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if minutes <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return minutes, nil
}

// parseSlotRange validates the startDate/endDate query parameters shared by
// the slot endpoints.
func parseSlotRange(c *gin.Context) (time.Time, time.Time, bool) {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate are required"})
		return time.Time{}, time.Time{}, false
	}

	start, err := parseDateParam(startStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate", "details": err.Error()})
		return time.Time{}, time.Time{}, false
	}
	end, err := parseDateParam(endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate", "details": err.Error()})
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must not be before startDate"})
		return time.Time{}, time.Time{}, false
	}
	if end.Sub(start) > scheduling.MaxQuerySpanDays*24*time.Hour {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("date range must not exceed %d days", scheduling.MaxQuerySpanDays),
		})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// GetAvailableSlotsHandler handles GET /api/scheduling/available-slots.
func (h *SchedulingHandler) GetAvailableSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	orgID, ok := middleware.OrgIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not authenticated"})
		return
	}

	start, end, ok := parseSlotRange(c)
	if !ok {
		return
	}

	duration := 0
	if durationStr := c.Query("duration"); durationStr != "" {
		parsed, err := parseDurationParam(durationStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid duration"})
			return
		}
		duration = parsed
	}

	result, err := h.Service.GetAvailableSlots(c.Request.Context(), scheduling.SlotQuery{
		OrgID:           orgID,
		Start:           start,
		End:             end,
		DurationMinutes: duration,
	})
	if err != nil {
		logger.Error("failed to compute available slots", zap.String("orgID", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute available slots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slots":    result.Slots,
		"timezone": result.Timezone,
		"duration": result.Duration,
		"buffer":   result.Buffer,
	})
}
