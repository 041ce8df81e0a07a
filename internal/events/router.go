package events

import (
	"ticketly/internal/shared/config"
	"ticketly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, cfg *config.Config, controller Controller) {
	// Public routes - anyone can browse events
	publicEvents := router.Group("/events")
	{
		publicEvents.GET("", controller.GetAllEvents)       // GET /api/v1/events
		publicEvents.GET("/:eventId", controller.GetEvent)  // GET /api/v1/events/:eventId
	}

	// Admin routes - only admins can create events
	adminEvents := router.Group("/events")
	adminEvents.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		adminEvents.POST("", controller.CreateEvent) // POST /api/v1/events
	}
}
