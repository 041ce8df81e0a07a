package bookings

import (
	"context"
	"errors"
	"fmt"

	"ticketly/internal/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrInsufficientTickets = errors.New("not enough tickets available")
)

type Repository interface {
	// BookTickets runs the whole check-and-decrement sequence in a single
	// transaction and returns the resulting booking row and the event.
	BookTickets(ctx context.Context, userID, eventID uuid.UUID, ticketCount int) (*Booking, *events.Event, error)

	GetAllBookings(ctx context.Context, pageNumber, pageSize int) ([]Booking, int64, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// lockForUpdate takes a SELECT ... FOR UPDATE row lock so concurrent
// bookings serialize on the availability check.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// BookTickets locks the event row, checks inventory, creates or accumulates
// the (user, event) booking row and decrements the available count. All of
// it commits or rolls back as one unit.
func (r *repository) BookTickets(ctx context.Context, userID, eventID uuid.UUID, ticketCount int) (*Booking, *events.Event, error) {
	var booked Booking
	var event events.Event

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the event row so concurrent requests serialize on the
		// availability check.
		err := lockForUpdate(tx).
			Where("id = ?", eventID).
			First(&event).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("failed to lock event: %w", err)
		}

		// 2. Check inventory before touching anything.
		if event.AvailableTickets < ticketCount {
			return ErrInsufficientTickets
		}

		// 3. Create or accumulate the booking row for this (user, event).
		var existing Booking
		err = tx.Where("user_id = ? AND event_id = ?", userID, eventID).First(&existing).Error
		switch {
		case err == nil:
			existing.TicketCount += ticketCount
			if err := tx.Model(&Booking{}).
				Where("id = ?", existing.ID).
				Update("ticket_count", existing.TicketCount).Error; err != nil {
				return fmt.Errorf("failed to update booking: %w", err)
			}
			booked = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			booked = Booking{
				ID:          uuid.New(),
				UserID:      userID,
				EventID:     eventID,
				TicketCount: ticketCount,
			}
			if err := tx.Create(&booked).Error; err != nil {
				return fmt.Errorf("failed to create booking: %w", err)
			}
		default:
			return fmt.Errorf("failed to load booking: %w", err)
		}

		// 4. Decrement inventory as part of the same transaction. The
		// availability guard in the WHERE clause backs up the row lock,
		// so the counter can never go negative.
		res := tx.Model(&events.Event{}).
			Where("id = ? AND available_tickets >= ?", eventID, ticketCount).
			Update("available_tickets", gorm.Expr("available_tickets - ?", ticketCount))
		if res.Error != nil {
			return fmt.Errorf("failed to update available tickets: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientTickets
		}
		event.AvailableTickets -= ticketCount

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &booked, &event, nil
}

func (r *repository) GetAllBookings(ctx context.Context, pageNumber, pageSize int) ([]Booking, int64, error) {
	var bookings []Booking
	var totalRecords int64

	if pageNumber <= 0 {
		pageNumber = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&Booking{})

	if err := baseQuery.Count(&totalRecords).Error; err != nil {
		return nil, 0, err
	}

	offset := (pageNumber - 1) * pageSize
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&bookings).Error

	return bookings, totalRecords, err
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
