package bookings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticketly/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// BookTicket handles POST /bookings.
func (ctrl *Controller) BookTicket(c *gin.Context) {
	var req BookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	userID, exists := c.Get("user_id")
	uid, ok := userID.(string)
	if !exists || !ok {
		response.RespondJSON(c, http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	userUUID, err := uuid.Parse(uid)
	if err != nil {
		response.RespondJSON(c, http.StatusInternalServerError, "Invalid user ID format", nil, nil)
		return
	}

	userEmail, _ := c.Get("user_email")
	email, _ := userEmail.(string)

	confirmation, err := ctrl.service.BookTicket(c.Request.Context(), userUUID, email, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			response.RespondJSON(c, http.StatusNotFound, "Event not found", nil, nil)
		case errors.Is(err, ErrInsufficientTickets):
			response.RespondJSON(c, http.StatusBadRequest, "Not enough tickets available", nil, nil)
		default:
			response.RespondJSON(c, http.StatusInternalServerError, "Error booking event", nil, nil)
		}
		return
	}

	response.RespondJSON(c, http.StatusOK, "Booking successful", confirmation, nil)
}

// GetAllBookings handles GET /bookings (admin only).
func (ctrl *Controller) GetAllBookings(c *gin.Context) {
	pageNumber, pageSize := response.ParsePagination(c)

	result, err := ctrl.service.GetAllBookings(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		response.RespondJSON(c, http.StatusInternalServerError, "Error fetching bookings", nil, nil)
		return
	}

	meta := response.NewPageMeta(pageNumber, pageSize, result.TotalRecords)
	response.RespondPaged(c, http.StatusOK, "Fetched paginated bookings", result.Bookings, meta)
}
