package repository

import (
	"context"

	"presscraft/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 100

// NewsClippingRepository defines the interface for persisted clipping articles.
type NewsClippingRepository interface {
	FindExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error)
	CreateIgnoreConflict(ctx context.Context, clippings []entity.NewsClipping) (int64, error)
}

// NewNewsClippingRepository creates a new GORM-based clipping repository.
func NewNewsClippingRepository(db *gorm.DB) NewsClippingRepository {
	return &newsClippingRepository{db: db}
}

type newsClippingRepository struct {
	db *gorm.DB
}

// FindExistingHashes returns the subset of hashes already stored.
func (r *newsClippingRepository) FindExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(hashes) == 0 {
		return existing, nil
	}

	var found []string
	if err := r.db.WithContext(ctx).
		Model(&entity.NewsClipping{}).
		Where("hash_identifier IN ?", hashes).
		Pluck("hash_identifier", &found).Error; err != nil {
		return nil, err
	}
	for _, h := range found {
		existing[h] = true
	}
	return existing, nil
}

// CreateIgnoreConflict inserts clippings, skipping rows whose hash_identifier
// already exists, and reports how many rows were written.
func (r *newsClippingRepository) CreateIgnoreConflict(ctx context.Context, clippings []entity.NewsClipping) (int64, error) {
	if len(clippings) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&clippings, insertBatchSize)
	return result.RowsAffected, result.Error
}
