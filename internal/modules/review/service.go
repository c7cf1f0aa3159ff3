package review

import (
	"context"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type Service struct {
	reviews    ReviewRepository
	properties PropertyWriter
	bookings   BookingReader
	transact   func(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// NewService wires review creation. transact runs fn inside a database
// transaction; pass nil to run without one (tests).
func NewService(reviews ReviewRepository, properties PropertyWriter, bookings BookingReader, db *gorm.DB) *Service {
	transact := func(ctx context.Context, fn func(tx *gorm.DB) error) error {
		return fn(nil)
	}
	if db != nil {
		transact = func(ctx context.Context, fn func(tx *gorm.DB) error) error {
			return db.WithContext(ctx).Transaction(fn)
		}
	}
	return &Service{
		reviews:    reviews,
		properties: properties,
		bookings:   bookings,
		transact:   transact,
	}
}

// Create accepts a review for a completed stay and recomputes the property
// aggregate in the same transaction, so rating and review_count can never
// drift from the review rows.
func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID == nil || *b.UserID != userID {
		return nil, ErrNotYourBooking
	}
	if b.PropertyID != req.PropertyID {
		return nil, ErrWrongProperty
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrStayNotCompleted
	}

	if exists, err := s.reviews.ExistsForBooking(ctx, req.BookingID); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrAlreadyReviewed
	}

	rev := &domain.Review{
		PropertyID: req.PropertyID,
		UserID:     userID,
		BookingID:  &req.BookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	err = s.transact(ctx, func(tx *gorm.DB) error {
		if err := s.reviews.Create(ctx, tx, rev); err != nil {
			return err
		}
		avg, count, err := s.reviews.Aggregate(ctx, tx, req.PropertyID)
		if err != nil {
			return err
		}
		return s.properties.UpdateRating(ctx, tx, req.PropertyID, avg, count)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *Service) ListByProperty(ctx context.Context, propertyID int64, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.reviews.GetByPropertyID(ctx, propertyID, limit, offset)
}
