package bookings_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketly/internal/bookings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingRouter(service bookings.Service, injectUser bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := bookings.NewController(service)

	handlers := []gin.HandlerFunc{}
	if injectUser {
		handlers = append(handlers, func(c *gin.Context) {
			c.Set("user_id", uuid.New().String())
			c.Set("user_email", "alice@example.com")
		})
	}
	handlers = append(handlers, controller.BookTicket)
	router.POST("/bookings", handlers...)
	return router
}

func postBooking(router *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestBookTicketHandler_Success(t *testing.T) {
	repo := newFakeRepository()
	eventID := repo.addEvent("Tech Conference", 50)
	service := newTestService(repo, newFakeNotifier())
	router := newBookingRouter(service, true)

	rec := postBooking(router, gin.H{"eventId": eventID.String(), "ticketCount": 2})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Succeeded bool                         `json:"succeeded"`
		Message   string                       `json:"message"`
		Data      bookings.BookingConfirmation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Succeeded)
	assert.Equal(t, "Booking successful", body.Message)
	assert.Equal(t, 2, body.Data.TicketCount)
	assert.Equal(t, eventID.String(), body.Data.EventID)
}

func TestBookTicketHandler_ValidationErrors(t *testing.T) {
	service := newTestService(newFakeRepository(), newFakeNotifier())
	router := newBookingRouter(service, true)

	// Missing ticketCount
	rec := postBooking(router, gin.H{"eventId": uuid.New().String()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Non-positive ticketCount
	rec = postBooking(router, gin.H{"eventId": uuid.New().String(), "ticketCount": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Malformed event id
	rec = postBooking(router, gin.H{"eventId": "nope", "ticketCount": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookTicketHandler_EventNotFound(t *testing.T) {
	service := newTestService(newFakeRepository(), newFakeNotifier())
	router := newBookingRouter(service, true)

	rec := postBooking(router, gin.H{"eventId": uuid.New().String(), "ticketCount": 1})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Event not found")
}

func TestBookTicketHandler_InsufficientTickets(t *testing.T) {
	repo := newFakeRepository()
	eventID := repo.addEvent("Small Show", 1)
	service := newTestService(repo, newFakeNotifier())
	router := newBookingRouter(service, true)

	rec := postBooking(router, gin.H{"eventId": eventID.String(), "ticketCount": 5})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not enough tickets available")
}

func TestBookTicketHandler_Unauthenticated(t *testing.T) {
	service := newTestService(newFakeRepository(), newFakeNotifier())
	router := newBookingRouter(service, false)

	rec := postBooking(router, gin.H{"eventId": uuid.New().String(), "ticketCount": 1})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookTicketHandler_NonStringUserID(t *testing.T) {
	// A context value of the wrong type must come back 401, not panic.
	service := newTestService(newFakeRepository(), newFakeNotifier())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := bookings.NewController(service)
	router.POST("/bookings", func(c *gin.Context) {
		c.Set("user_id", 12345)
	}, controller.BookTicket)

	rec := postBooking(router, gin.H{"eventId": uuid.New().String(), "ticketCount": 1})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetAllBookingsHandler(t *testing.T) {
	repo := newFakeRepository()
	eventID := repo.addEvent("Summit", 100)
	service := newTestService(repo, newFakeNotifier())

	for i := 0; i < 4; i++ {
		_, err := service.BookTicket(context.Background(), uuid.New(), "user@example.com", bookings.BookTicketRequest{
			EventID:     eventID.String(),
			TicketCount: 1,
		})
		require.NoError(t, err)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := bookings.NewController(service)
	router.GET("/bookings", controller.GetAllBookings)

	req := httptest.NewRequest(http.MethodGet, "/bookings?pageNumber=1&pageSize=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Succeeded bool `json:"succeeded"`
		PageMeta  struct {
			TotalRecords int64 `json:"totalRecords"`
			TotalPages   int   `json:"totalPages"`
		} `json:"pageMeta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Succeeded)
	assert.Equal(t, int64(4), body.PageMeta.TotalRecords)
	assert.Equal(t, 2, body.PageMeta.TotalPages)
}
