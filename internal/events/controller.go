package events

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ticketly/internal/shared/utils/response"
)

type Controller interface {
	CreateEvent(c *gin.Context)
	GetEvent(c *gin.Context)
	GetAllEvents(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// CreateEvent handles POST /events (admin only).
func (ctrl *controller) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	adminID, exists := c.Get("user_id")
	aid, ok := adminID.(string)
	if !exists || !ok {
		response.RespondJSON(c, http.StatusUnauthorized, "Admin not authenticated", nil, nil)
		return
	}

	adminUUID, err := uuid.Parse(aid)
	if err != nil {
		response.RespondJSON(c, http.StatusInternalServerError, "Invalid admin ID format", nil, nil)
		return
	}

	created, err := ctrl.service.CreateEvent(c.Request.Context(), adminUUID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateName):
			response.RespondJSON(c, http.StatusConflict, "Event with this name already exists", nil, nil)
		case errors.Is(err, ErrEventDateInPast):
			response.RespondJSON(c, http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(c, http.StatusInternalServerError, "Failed to create event", nil, nil)
		}
		return
	}

	response.RespondJSON(c, http.StatusOK, "Event created successfully", created, nil)
}

// GetEvent handles GET /events/:eventId.
func (ctrl *controller) GetEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.RespondJSON(c, http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	event, err := ctrl.service.GetEventByID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.RespondJSON(c, http.StatusNotFound, "Event not found", nil, nil)
			return
		}
		response.RespondJSON(c, http.StatusInternalServerError, "Failed to fetch event", nil, nil)
		return
	}

	response.RespondJSON(c, http.StatusOK, "Event retrieved successfully", event, nil)
}

// GetAllEvents handles GET /events with pageNumber/pageSize pagination.
func (ctrl *controller) GetAllEvents(c *gin.Context) {
	pageNumber, pageSize := response.ParsePagination(c)

	result, err := ctrl.service.GetAllEvents(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		response.RespondJSON(c, http.StatusInternalServerError, "Failed to fetch events", nil, nil)
		return
	}

	meta := response.NewPageMeta(pageNumber, pageSize, result.TotalRecords)
	response.RespondPaged(c, http.StatusOK, "Fetched all events", result.Events, meta)
}
