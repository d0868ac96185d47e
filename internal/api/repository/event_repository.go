package repository

import (
	"context"
	"time"

	"presscraft/internal/entity"

	"gorm.io/gorm"
)

// EventFilter narrows FindAll to an inclusive date range. Zero values mean unbounded.
type EventFilter struct {
	From   time.Time
	To     time.Time
	Status entity.EventStatus
}

// EventRepository defines the interface for calendar event data operations.
type EventRepository interface {
	FindAll(ctx context.Context, filter EventFilter) ([]entity.PREvent, error)
	FindByID(ctx context.Context, id uint) (*entity.PREvent, error)
	Save(ctx context.Context, event *entity.PREvent) error
	Delete(ctx context.Context, id uint) error
}

// NewEventRepository creates a new GORM-based event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

type eventRepository struct {
	db *gorm.DB
}

// FindAll retrieves events ordered by date.
func (r *eventRepository) FindAll(ctx context.Context, filter EventFilter) ([]entity.PREvent, error) {
	query := r.db.WithContext(ctx)
	if !filter.From.IsZero() {
		query = query.Where("date >= ?", filter.From.Format("2006-01-02"))
	}
	if !filter.To.IsZero() {
		query = query.Where("date <= ?", filter.To.Format("2006-01-02"))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var events []entity.PREvent
	if err := query.Order("date asc, id asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// FindByID retrieves an event by its ID.
func (r *eventRepository) FindByID(ctx context.Context, id uint) (*entity.PREvent, error) {
	var event entity.PREvent
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Save inserts the event when it has no ID and updates every column otherwise.
func (r *eventRepository) Save(ctx context.Context, event *entity.PREvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete removes an event. Deleting a missing event is reported as gorm.ErrRecordNotFound.
func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.PREvent{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
