package routes

import (
	"net/http"
	"time"

	"coachdesk/handlers"
	"coachdesk/middleware"
	"coachdesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterOrganizationRoutes registers tenant registration and auth endpoints.
func RegisterOrganizationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orgs")
	{
		api.POST("/register", hb.RegisterOrganizationHandler)
		api.POST("/login", hb.AuthenticateOrganizationHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthOrgMiddleware(hb.OrgRepo))
		api.GET("/me", hb.GetOrganizationHandler)
	}
}

// RegisterSchedulingRoutes registers the authenticated scheduling endpoints:
// slot resolution, availability settings and events.
func RegisterSchedulingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/scheduling")
	{
		api.Use(middleware.JWTAuthOrgMiddleware(hb.OrgRepo))
		api.GET("/available-slots", hb.GetAvailableSlotsHandler)

		api.GET("/availability", hb.GetAvailabilityHandler)
		api.PUT("/availability", hb.UpdateAvailabilityHandler)
		api.POST("/availability/blocked-slots", hb.AddBlockedSlotHandler)
		api.DELETE("/availability/blocked-slots/:blockID", hb.RemoveBlockedSlotHandler)

		api.GET("/events", hb.ListEventsHandler)
		api.POST("/events", hb.CreateEventHandler)
		api.DELETE("/events/:eventID", hb.CancelEventHandler)
	}
}

// RegisterFunnelRoutes registers the funnel endpoints. The slot and booking
// endpoints are unauthenticated; the organization is resolved from the
// intake config. Config management requires authentication.
func RegisterFunnelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	public := r.Group("/api/funnel/scheduling")
	{
		public.GET("/slots", hb.GetFunnelSlotsHandler)
		public.POST("/book", hb.BookFunnelSlotHandler)
	}

	configs := r.Group("/api/funnel/configs")
	{
		configs.Use(middleware.JWTAuthOrgMiddleware(hb.OrgRepo))
		configs.GET("", hb.ListIntakeConfigsHandler)
		configs.POST("", hb.CreateIntakeConfigHandler)
		configs.PUT("/:configID", hb.UpdateIntakeConfigHandler)
		configs.DELETE("/:configID", hb.DeleteIntakeConfigHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterOrganizationRoutes(r, hb)
	RegisterSchedulingRoutes(r, hb)
	RegisterFunnelRoutes(r, hb)
	RegisterHealthRoute(r)
}
