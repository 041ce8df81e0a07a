package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEventDateInPast = errors.New("event date must be in the future")

type Service interface {
	CreateEvent(ctx context.Context, adminID uuid.UUID, req CreateEventRequest) (*CreatedEventResponse, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	GetAllEvents(ctx context.Context, pageNumber, pageSize int) (*PaginatedEvents, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateEvent(ctx context.Context, adminID uuid.UUID, req CreateEventRequest) (*CreatedEventResponse, error) {
	if !req.Date.After(time.Now()) {
		return nil, ErrEventDateInPast
	}

	exists, err := s.repo.NameExists(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateName
	}

	available := req.AvailableTickets
	if available == 0 {
		available = req.TotalTickets
	}

	event := &Event{
		ID:               uuid.New(),
		Name:             req.Name,
		Date:             req.Date,
		TotalTickets:     req.TotalTickets,
		AvailableTickets: available,
		CreatedBy:        adminID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	return &CreatedEventResponse{
		EventID:   event.ID.String(),
		EventName: event.Name,
	}, nil
}

func (s *service) GetEventByID(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := event.ToResponse()
	return &resp, nil
}

func (s *service) GetAllEvents(ctx context.Context, pageNumber, pageSize int) (*PaginatedEvents, error) {
	events, totalRecords, err := s.repo.GetAll(ctx, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, events[i].ToResponse())
	}

	return &PaginatedEvents{
		Events:       responses,
		TotalRecords: totalRecords,
	}, nil
}
