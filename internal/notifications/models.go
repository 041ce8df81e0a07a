package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusQueued  NotificationStatus = "QUEUED"
	NotificationStatusSent    NotificationStatus = "SENT"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

// BookingNotification is the message published after a committed booking.
type BookingNotification struct {
	ID             uuid.UUID          `json:"id"`
	BookingID      string             `json:"booking_id"`
	RecipientID    string             `json:"recipient_id"`
	RecipientEmail string             `json:"recipient_email"`
	EventName      string             `json:"event_name"`
	TicketCount    int                `json:"ticket_count"`
	Status         NotificationStatus `json:"status"`
	LastError      *string            `json:"last_error,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// NewBookingNotification builds a notification ready for publishing.
func NewBookingNotification(bookingID, recipientID, recipientEmail, eventName string, ticketCount int) *BookingNotification {
	now := time.Now()
	return &BookingNotification{
		ID:             uuid.New(),
		BookingID:      bookingID,
		RecipientID:    recipientID,
		RecipientEmail: recipientEmail,
		EventName:      eventName,
		TicketCount:    ticketCount,
		Status:         NotificationStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (n *BookingNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

func NotificationFromJSON(data []byte) (*BookingNotification, error) {
	var n BookingNotification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// GetPartitionKey routes all messages for one recipient to one partition.
func (n *BookingNotification) GetPartitionKey() string {
	return n.RecipientEmail
}
