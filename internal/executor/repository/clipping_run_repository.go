package repository

import (
	"context"

	"presscraft/internal/entity"

	"gorm.io/gorm"
)

// ClippingRunRepository defines the run history operations of the executor.
type ClippingRunRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.ClippingRun, error)
	Update(ctx context.Context, run *entity.ClippingRun) error
}

// NewClippingRunRepository creates a new GORM-based run history repository.
func NewClippingRunRepository(db *gorm.DB) ClippingRunRepository {
	return &clippingRunRepository{db: db}
}

type clippingRunRepository struct {
	db *gorm.DB
}

// FindByID retrieves a run by its ID.
func (r *clippingRunRepository) FindByID(ctx context.Context, id uint) (*entity.ClippingRun, error) {
	var run entity.ClippingRun
	if err := r.db.WithContext(ctx).First(&run, id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// Update saves the final state of a run.
func (r *clippingRunRepository) Update(ctx context.Context, run *entity.ClippingRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}
