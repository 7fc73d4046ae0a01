package handlers

import (
	"errors"
	"net/http"

	"coachdesk/middleware"
	"coachdesk/models"
	"coachdesk/services/scheduling"
	"coachdesk/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EventHandler serves the event (booking) endpoints.
type EventHandler struct {
	Service scheduling.SchedulingService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc scheduling.SchedulingService) *EventHandler {
	return &EventHandler{Service: svc}
}

// ListEventsHandler handles GET /api/scheduling/events.
func (h *EventHandler) ListEventsHandler(c *gin.Context) {
	orgID, ok := middleware.OrgIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not authenticated"})
		return
	}

	from, to, ok := parseSlotRange(c)
	if !ok {
		return
	}

	events, err := h.Service.ListEvents(c.Request.Context(), orgID, from, to)
	if err != nil {
		utils.GetLogger().Error("failed to list events", zap.String("orgID", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateEventHandler handles POST /api/scheduling/events.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	orgID, ok := middleware.OrgIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not authenticated"})
		return
	}

	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	event, err := h.Service.CreateEvent(c.Request.Context(), orgID, req)
	if err != nil {
		utils.GetLogger().Error("failed to create event", zap.String("orgID", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// CancelEventHandler handles DELETE /api/scheduling/events/:eventID.
func (h *EventHandler) CancelEventHandler(c *gin.Context) {
	orgID, ok := middleware.OrgIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not authenticated"})
		return
	}

	eventID := c.Param("eventID")
	if err := h.Service.CancelEvent(c.Request.Context(), orgID, eventID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		utils.GetLogger().Error("failed to cancel event", zap.String("orgID", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event cancelled"})
}
