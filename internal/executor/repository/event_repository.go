package repository

import (
	"context"
	"time"

	"presscraft/internal/entity"

	"gorm.io/gorm"
)

// EventRepository reads calendar events for coverage reports.
type EventRepository interface {
	FindBetween(ctx context.Context, from, to time.Time) ([]entity.PREvent, error)
}

// NewEventRepository creates a new GORM-based event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

type eventRepository struct {
	db *gorm.DB
}

// FindBetween returns the events dated inside [from, to], both days inclusive.
func (r *eventRepository) FindBetween(ctx context.Context, from, to time.Time) ([]entity.PREvent, error) {
	var events []entity.PREvent
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date asc").
		Find(&events).Error
	return events, err
}
