package repository

import (
	"context"

	"presscraft/internal/entity"

	"gorm.io/gorm"
)

// SubscriptionRepository reads the subscription a task was enqueued for.
type SubscriptionRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.ClippingSubscription, error)
}

// NewSubscriptionRepository creates a new GORM-based subscription repository.
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

type subscriptionRepository struct {
	db *gorm.DB
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id uint) (*entity.ClippingSubscription, error) {
	var sub entity.ClippingSubscription
	if err := r.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}
