// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"
	"time"

	orgRepo "coachdesk/database/repository/organization"
	"coachdesk/utils"

	"github.com/gin-gonic/gin"
)

const (
	authCachePrefix = "orgtoken:"
	authCacheTTL    = 10 * time.Minute
)

// JWTAuthOrgMiddleware authenticates requests with an organization bearer
// token and sets "orgID" in the gin context.
func JWTAuthOrgMiddleware(orgs orgRepo.OrganizationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Compute the token hash and look up the owning organization, going
		// through the auth cache first.
		computedHash := utils.HashToken(tokenString)
		cache := utils.GetAuthCacheClient()
		if orgID, err := cache.Get(c.Request.Context(), authCachePrefix+computedHash).Result(); err == nil && orgID != "" {
			c.Set("orgID", orgID)
			c.Next()
			return
		}

		org, err := orgs.GetByTokenHash(c.Request.Context(), computedHash)
		if err != nil || org == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or organization not found"})
			return
		}
		cache.Set(c.Request.Context(), authCachePrefix+computedHash, org.ID, authCacheTTL)

		c.Set("orgID", org.ID)
		c.Next()
	}
}

// OrgIDFromContext returns the authenticated organization ID set by
// JWTAuthOrgMiddleware.
func OrgIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get("orgID")
	if !exists {
		return "", false
	}
	orgID, ok := value.(string)
	if !ok || orgID == "" {
		return "", false
	}
	return orgID, true
}
