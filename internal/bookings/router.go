package bookings

import (
	"ticketly/internal/shared/config"
	"ticketly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures all booking-related routes
func SetupBookingRoutes(rg *gin.RouterGroup, cfg *config.Config, controller *Controller) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuth(cfg))
	{
		bookings.POST("", controller.BookTicket) // POST /api/v1/bookings

		admin := bookings.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("", controller.GetAllBookings) // GET /api/v1/bookings
		}
	}
}
