package events

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name string    `json:"name" gorm:"uniqueIndex;not null;size:255"`
	Date time.Time `json:"date" gorm:"not null"`

	// TotalTickets is fixed at creation. AvailableTickets is decremented
	// only by the booking transaction and never drops below zero.
	TotalTickets     int `json:"total_tickets" gorm:"not null;check:total_tickets > 0"`
	AvailableTickets int `json:"available_tickets" gorm:"not null;check:available_tickets >= 0"`

	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type EventResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Date             time.Time `json:"date"`
	TotalTickets     int       `json:"total_tickets"`
	AvailableTickets int       `json:"available_tickets"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CreateEventRequest struct {
	Name             string    `json:"eventName" binding:"required,min=3,max=255"`
	Date             time.Time `json:"eventDate" binding:"required"`
	TotalTickets     int       `json:"totalTickets" binding:"required,min=1,max=100000"`
	AvailableTickets int       `json:"availableTickets" binding:"min=0,ltefield=TotalTickets"`
}

type CreatedEventResponse struct {
	EventID   string `json:"eventId"`
	EventName string `json:"eventName"`
}

type PaginatedEvents struct {
	Events       []EventResponse
	TotalRecords int64
}

// Helper method to convert Event to EventResponse
func (e *Event) ToResponse() EventResponse {
	return EventResponse{
		ID:               e.ID.String(),
		Name:             e.Name,
		Date:             e.Date,
		TotalTickets:     e.TotalTickets,
		AvailableTickets: e.AvailableTickets,
		CreatedBy:        e.CreatedBy.String(),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}
