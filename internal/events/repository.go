package events

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrDuplicateName = errors.New("event with this name already exists")
)

type Repository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	NameExists(ctx context.Context, name string) (bool, error)
	GetAll(ctx context.Context, pageNumber, pageSize int) ([]Event, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, event *Event) error {
	err := r.db.WithContext(ctx).Create(event).Error
	// A concurrent create can slip past the NameExists pre-check; the unique
	// index is the authority.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateName
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *repository) NameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Event{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) GetAll(ctx context.Context, pageNumber, pageSize int) ([]Event, int64, error) {
	var events []Event
	var totalRecords int64

	if pageNumber <= 0 {
		pageNumber = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&Event{})

	if err := baseQuery.Count(&totalRecords).Error; err != nil {
		return nil, 0, err
	}

	offset := (pageNumber - 1) * pageSize
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&events).Error

	return events, totalRecords, err
}
