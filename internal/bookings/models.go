package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking holds the cumulative ticket count a user has booked for an event.
// The composite unique index keeps at most one row per (user, event) pair.
type Booking struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_bookings_user_event"`
	EventID     uuid.UUID `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_bookings_user_event"`
	TicketCount int       `json:"ticket_count" gorm:"not null;check:ticket_count > 0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// BookTicketRequest is the booking request payload
type BookTicketRequest struct {
	EventID     string `json:"eventId" binding:"required,uuid"`
	TicketCount int    `json:"ticketCount" binding:"required,gt=0"`
}

// BookingConfirmation is returned after a committed booking
type BookingConfirmation struct {
	BookingID   string    `json:"booking_id"`
	EventID     string    `json:"event_id"`
	EventName   string    `json:"event_name"`
	TicketCount int       `json:"ticket_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingResponse represents a booking row in admin listings
type BookingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	EventID     string    `json:"event_id"`
	TicketCount int       `json:"ticket_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PaginatedBookings struct {
	Bookings     []BookingResponse
	TotalRecords int64
}

func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		ID:          b.ID.String(),
		UserID:      b.UserID.String(),
		EventID:     b.EventID.String(),
		TicketCount: b.TicketCount,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
