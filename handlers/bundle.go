package handlers

import (
	orgRepo "coachdesk/database/repository/organization"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all route handlers plus the repositories the
// middleware needs. Assembled once in main.
type HandlerBundle struct {
	OrgRepo orgRepo.OrganizationRepository

	// Organization endpoints.
	RegisterOrganizationHandler     gin.HandlerFunc
	AuthenticateOrganizationHandler gin.HandlerFunc
	GetOrganizationHandler          gin.HandlerFunc

	// Scheduling endpoints.
	GetAvailableSlotsHandler gin.HandlerFunc

	// Availability settings endpoints.
	GetAvailabilityHandler    gin.HandlerFunc
	UpdateAvailabilityHandler gin.HandlerFunc
	AddBlockedSlotHandler     gin.HandlerFunc
	RemoveBlockedSlotHandler  gin.HandlerFunc

	// Event endpoints.
	ListEventsHandler  gin.HandlerFunc
	CreateEventHandler gin.HandlerFunc
	CancelEventHandler gin.HandlerFunc

	// Intake config endpoints.
	ListIntakeConfigsHandler  gin.HandlerFunc
	CreateIntakeConfigHandler gin.HandlerFunc
	UpdateIntakeConfigHandler gin.HandlerFunc
	DeleteIntakeConfigHandler gin.HandlerFunc

	// Funnel endpoints (unauthenticated).
	GetFunnelSlotsHandler gin.HandlerFunc
	BookFunnelSlotHandler gin.HandlerFunc
}
