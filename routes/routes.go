package routes

import (
	"net/http"
	"time"

	"meetsync/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	User         *handlers.UserHandler
	Availability *handlers.AvailabilityHandler
	Meeting      *handlers.MeetingHandler
}

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("", hb.User.RegisterUserHandler)
		api.GET("/:id", hb.User.GetUserProfileHandler)
		api.PUT("/:id/availability", hb.Availability.SetAvailabilityHandler)
	}
}

// RegisterAvailabilityRoutes registers availability query endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/overlap/:id1/:id2", hb.Availability.GetOverlapHandler)
	}
}

// RegisterMeetingRoutes registers booking endpoints.
func RegisterMeetingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/meetings")
	{
		api.POST("", hb.Meeting.BookMeetingHandler)
		api.GET("/:id", hb.Meeting.GetBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Meetsync"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterMeetingRoutes(r, hb)
	RegisterHealthRoute(r)
}
