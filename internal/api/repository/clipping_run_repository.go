package repository

import (
	"context"

	"presscraft/internal/entity"

	"gorm.io/gorm"
)

// ClippingRunRepository defines the interface for subscription run history.
type ClippingRunRepository interface {
	Create(ctx context.Context, run *entity.ClippingRun) error
	FindAllBySubscriptionID(ctx context.Context, subscriptionID uint, limit int) ([]entity.ClippingRun, error)
	Update(ctx context.Context, run *entity.ClippingRun) error
}

// NewClippingRunRepository creates a new GORM-based run history repository.
func NewClippingRunRepository(db *gorm.DB) ClippingRunRepository {
	return &clippingRunRepository{db: db}
}

type clippingRunRepository struct {
	db *gorm.DB
}

func (r *clippingRunRepository) Create(ctx context.Context, run *entity.ClippingRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

// FindAllBySubscriptionID returns the newest runs first.
func (r *clippingRunRepository) FindAllBySubscriptionID(ctx context.Context, subscriptionID uint, limit int) ([]entity.ClippingRun, error) {
	var runs []entity.ClippingRun
	query := r.db.WithContext(ctx).Where("subscription_id = ?", subscriptionID).Order("started_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *clippingRunRepository) Update(ctx context.Context, run *entity.ClippingRun) error {
	return r.db.WithContext(ctx).Updates(run).Error
}
