package events_test

import (
	"context"
	"testing"
	"time"

	"ticketly/internal/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	byID   map[uuid.UUID]*events.Event
	byName map[string]*events.Event
	order  []uuid.UUID
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:   make(map[uuid.UUID]*events.Event),
		byName: make(map[string]*events.Event),
	}
}

func (f *fakeRepository) Create(ctx context.Context, event *events.Event) error {
	f.byID[event.ID] = event
	f.byName[event.Name] = event
	f.order = append(f.order, event.ID)
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*events.Event, error) {
	event, ok := f.byID[id]
	if !ok {
		return nil, events.ErrEventNotFound
	}
	return event, nil
}

func (f *fakeRepository) NameExists(ctx context.Context, name string) (bool, error) {
	_, ok := f.byName[name]
	return ok, nil
}

func (f *fakeRepository) GetAll(ctx context.Context, pageNumber, pageSize int) ([]events.Event, int64, error) {
	if pageNumber <= 0 {
		pageNumber = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	total := int64(len(f.order))
	start := (pageNumber - 1) * pageSize
	if start >= len(f.order) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(f.order) {
		end = len(f.order)
	}

	var page []events.Event
	for _, id := range f.order[start:end] {
		page = append(page, *f.byID[id])
	}
	return page, total, nil
}

func validRequest(name string) events.CreateEventRequest {
	return events.CreateEventRequest{
		Name:         name,
		Date:         time.Now().Add(48 * time.Hour),
		TotalTickets: 100,
	}
}

func TestCreateEvent_Success(t *testing.T) {
	repo := newFakeRepository()
	service := events.NewService(repo)

	created, err := service.CreateEvent(context.Background(), uuid.New(), validRequest("Tech Conference"))

	require.NoError(t, err)
	assert.Equal(t, "Tech Conference", created.EventName)
	assert.NotEmpty(t, created.EventID)

	id, err := uuid.Parse(created.EventID)
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.TotalTickets)
	assert.Equal(t, 100, stored.AvailableTickets, "available defaults to total when unset")
}

func TestCreateEvent_ExplicitAvailableTickets(t *testing.T) {
	repo := newFakeRepository()
	service := events.NewService(repo)

	req := validRequest("Partial Release")
	req.AvailableTickets = 40

	created, err := service.CreateEvent(context.Background(), uuid.New(), req)
	require.NoError(t, err)

	id, _ := uuid.Parse(created.EventID)
	stored, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 40, stored.AvailableTickets)
}

func TestCreateEvent_DuplicateName(t *testing.T) {
	repo := newFakeRepository()
	service := events.NewService(repo)

	_, err := service.CreateEvent(context.Background(), uuid.New(), validRequest("Music Evening"))
	require.NoError(t, err)

	created, err := service.CreateEvent(context.Background(), uuid.New(), validRequest("Music Evening"))
	assert.ErrorIs(t, err, events.ErrDuplicateName)
	assert.Nil(t, created)
}

// racingRepository simulates a concurrent duplicate create: the name check
// passes but the unique index rejects the insert.
type racingRepository struct {
	*fakeRepository
}

func (r *racingRepository) NameExists(ctx context.Context, name string) (bool, error) {
	return false, nil
}

func (r *racingRepository) Create(ctx context.Context, event *events.Event) error {
	return events.ErrDuplicateName
}

func TestCreateEvent_DuplicateNameRace(t *testing.T) {
	service := events.NewService(&racingRepository{fakeRepository: newFakeRepository()})

	created, err := service.CreateEvent(context.Background(), uuid.New(), validRequest("Music Evening"))
	assert.ErrorIs(t, err, events.ErrDuplicateName)
	assert.Nil(t, created)
}

func TestCreateEvent_DateInPast(t *testing.T) {
	repo := newFakeRepository()
	service := events.NewService(repo)

	req := validRequest("Retro Night")
	req.Date = time.Now().Add(-time.Hour)

	created, err := service.CreateEvent(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, events.ErrEventDateInPast)
	assert.Nil(t, created)
}

func TestGetEventByID_NotFound(t *testing.T) {
	service := events.NewService(newFakeRepository())

	event, err := service.GetEventByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, events.ErrEventNotFound)
	assert.Nil(t, event)
}

func TestGetAllEvents_Pagination(t *testing.T) {
	repo := newFakeRepository()
	service := events.NewService(repo)

	for _, name := range []string{"One", "Two", "Three", "Four", "Five"} {
		_, err := service.CreateEvent(context.Background(), uuid.New(), validRequest(name))
		require.NoError(t, err)
	}

	page, err := service.GetAllEvents(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalRecords)
	assert.Len(t, page.Events, 2)

	last, err := service.GetAllEvents(context.Background(), 3, 2)
	require.NoError(t, err)
	assert.Len(t, last.Events, 1)

	beyond, err := service.GetAllEvents(context.Background(), 9, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond.Events)
	assert.Equal(t, int64(5), beyond.TotalRecords)
}
