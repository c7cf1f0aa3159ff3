package repository

import (
	"context"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) DB() *gorm.DB { return r.db }

func (r *ReviewRepository) Create(ctx context.Context, tx *gorm.DB, rev *domain.Review) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(rev).Error
}

func (r *ReviewRepository) GetByPropertyID(ctx context.Context, propertyID int64, limit, offset int) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Preload("User").
		Find(&reviews).Error
	return reviews, err
}

// Aggregate returns the average rating and count for a property, computed
// inside tx when provided so the recompute sees the just-inserted review.
func (r *ReviewRepository) Aggregate(ctx context.Context, tx *gorm.DB, propertyID int64) (avg float64, count int, err error) {
	db := r.db
	if tx != nil {
		db = tx
	}

	var row struct {
		Avg   float64
		Count int
	}
	err = db.WithContext(ctx).Model(&domain.Review{}).
		Where("property_id = ?", propertyID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&row).Error
	return row.Avg, row.Count, err
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("booking_id = ?", bookingID).Count(&cnt).Error
	return cnt > 0, err
}
