package review

import (
	"context"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, tx *gorm.DB, rev *domain.Review) error
	GetByPropertyID(ctx context.Context, propertyID int64, limit, offset int) ([]domain.Review, error)
	Aggregate(ctx context.Context, tx *gorm.DB, propertyID int64) (avg float64, count int, err error)
	ExistsForBooking(ctx context.Context, bookingID int64) (bool, error)
}

type PropertyWriter interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	UpdateRating(ctx context.Context, tx *gorm.DB, id int64, rating float64, reviewCount int) error
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
