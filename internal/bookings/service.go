package bookings

import (
	"context"
	"errors"
	"fmt"

	"ticketly/internal/shared/config"
	"ticketly/pkg/logger"

	"github.com/google/uuid"
)

var ErrTransactionFailed = errors.New("booking transaction failed")

// Notifier delivers the booking confirmation. Delivery is best-effort: the
// booking response never depends on it.
type Notifier interface {
	BookingConfirmed(ctx context.Context, notice ConfirmationNotice) error
}

// ConfirmationNotice carries what the notifier needs to format a message.
type ConfirmationNotice struct {
	BookingID      string
	UserID         string
	RecipientEmail string
	EventName      string
	TicketCount    int
}

type Service interface {
	BookTicket(ctx context.Context, userID uuid.UUID, userEmail string, req BookTicketRequest) (*BookingConfirmation, error)
	GetAllBookings(ctx context.Context, pageNumber, pageSize int) (*PaginatedBookings, error)
}

type service struct {
	repo     Repository
	notifier Notifier
	cfg      *config.Config
	log      *logger.Logger
}

func NewService(repo Repository, notifier Notifier, cfg *config.Config, log *logger.Logger) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		log:      log,
	}
}

// BookTicket runs the booking transaction under a bounded timeout and, on
// commit, dispatches the confirmation asynchronously.
func (s *service) BookTicket(ctx context.Context, userID uuid.UUID, userEmail string, req BookTicketRequest) (*BookingConfirmation, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID: %w", err)
	}

	txCtx, cancel := context.WithTimeout(ctx, s.cfg.Booking.TxTimeout)
	defer cancel()

	booking, event, err := s.repo.BookTickets(txCtx, userID, eventID, req.TicketCount)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound), errors.Is(err, ErrInsufficientTickets):
			return nil, err
		default:
			return nil, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
		}
	}

	s.log.LogBookingCreated(ctx, booking.ID.String(), event.ID.String(), userID.String())

	// Fire-and-forget: a failed notification is logged and swallowed, the
	// committed booking stands either way.
	if s.notifier != nil {
		notice := ConfirmationNotice{
			BookingID:      booking.ID.String(),
			UserID:         userID.String(),
			RecipientEmail: userEmail,
			EventName:      event.Name,
			TicketCount:    booking.TicketCount,
		}
		go func() {
			if err := s.notifier.BookingConfirmed(context.Background(), notice); err != nil {
				s.log.LogNotificationFailure(context.Background(), notice.BookingID, err)
			}
		}()
	}

	return &BookingConfirmation{
		BookingID:   booking.ID.String(),
		EventID:     event.ID.String(),
		EventName:   event.Name,
		TicketCount: booking.TicketCount,
		CreatedAt:   booking.CreatedAt,
	}, nil
}

func (s *service) GetAllBookings(ctx context.Context, pageNumber, pageSize int) (*PaginatedBookings, error) {
	bookings, totalRecords, err := s.repo.GetAllBookings(ctx, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, bookings[i].ToResponse())
	}

	return &PaginatedBookings{
		Bookings:     responses,
		TotalRecords: totalRecords,
	}, nil
}
