package handlers

import (
	"errors"
	"net/http"

	"coachdesk/middleware"
	"coachdesk/models"
	"coachdesk/services/organization"
	"coachdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrganizationHandler serves tenant registration and authentication.
type OrganizationHandler struct {
	Service organization.OrganizationService
}

// NewOrganizationHandler constructs an OrganizationHandler.
func NewOrganizationHandler(svc organization.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{Service: svc}
}

// RegisterOrganizationHandler handles POST /api/orgs/register.
func (h *OrganizationHandler) RegisterOrganizationHandler(c *gin.Context) {
	var reg models.OrganizationRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	org, token, err := h.Service.Register(c.Request.Context(), reg)
	if err != nil {
		if errors.Is(err, organization.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("organization registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register organization"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"organization": org, "token": token})
}

// AuthenticateOrganizationHandler handles POST /api/orgs/login.
func (h *OrganizationHandler) AuthenticateOrganizationHandler(c *gin.Context) {
	var login models.OrganizationLogin
	if err := c.ShouldBindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	org, token, err := h.Service.Authenticate(c.Request.Context(), login)
	if err != nil {
		if errors.Is(err, organization.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("organization authentication failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"organization": org, "token": token})
}

// GetOrganizationHandler handles GET /api/orgs/me.
func (h *OrganizationHandler) GetOrganizationHandler(c *gin.Context) {
	orgID, ok := middleware.OrgIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organization not authenticated"})
		return
	}

	org, err := h.Service.GetByID(c.Request.Context(), orgID)
	if err != nil {
		utils.GetLogger().Error("failed to fetch organization", zap.String("orgID", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch organization"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"organization": org})
}
