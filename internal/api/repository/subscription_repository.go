package repository

import (
	"context"
	"time"

	"presscraft/internal/entity"

	"gorm.io/gorm"
)

// SubscriptionRepository defines the interface for clipping subscription data operations.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.ClippingSubscription) error
	FindByID(ctx context.Context, id uint) (*entity.ClippingSubscription, error)
	FindAll(ctx context.Context) ([]entity.ClippingSubscription, error)
	Update(ctx context.Context, sub *entity.ClippingSubscription) error
	FindDue(ctx context.Context, now time.Time) ([]entity.ClippingSubscription, error)
	Delete(ctx context.Context, id uint) error
}

// NewSubscriptionRepository creates a new GORM-based subscription repository.
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

type subscriptionRepository struct {
	db *gorm.DB
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *entity.ClippingSubscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id uint) (*entity.ClippingSubscription, error) {
	var sub entity.ClippingSubscription
	if err := r.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) FindAll(ctx context.Context) ([]entity.ClippingSubscription, error) {
	var subs []entity.ClippingSubscription
	if err := r.db.WithContext(ctx).Order("id asc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *entity.ClippingSubscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

// FindDue finds active subscriptions whose next execution is unset or not after now.
func (r *subscriptionRepository) FindDue(ctx context.Context, now time.Time) ([]entity.ClippingSubscription, error) {
	var subs []entity.ClippingSubscription
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND (next_execution IS NULL OR next_execution <= ?)", true, now).
		Order("id asc").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// Delete removes a subscription and its run history.
func (r *subscriptionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subscription_id = ?", id).Delete(&entity.ClippingRun{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.ClippingSubscription{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
