package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type mockReviews struct {
	mock.Mock
}

func (m *mockReviews) Create(ctx context.Context, tx *gorm.DB, rev *domain.Review) error {
	args := m.Called(ctx, tx, rev)
	if args.Error(0) == nil {
		rev.ID = 11
	}
	return args.Error(0)
}

func (m *mockReviews) GetByPropertyID(ctx context.Context, propertyID int64, limit, offset int) ([]domain.Review, error) {
	args := m.Called(ctx, propertyID, limit, offset)
	if v := args.Get(0); v != nil {
		return v.([]domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviews) Aggregate(ctx context.Context, tx *gorm.DB, propertyID int64) (float64, int, error) {
	args := m.Called(ctx, tx, propertyID)
	return args.Get(0).(float64), args.Int(1), args.Error(2)
}

func (m *mockReviews) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

type mockPropertyWriter struct {
	mock.Mock
}

func (m *mockPropertyWriter) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Property), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyWriter) UpdateRating(ctx context.Context, tx *gorm.DB, id int64, rating float64, reviewCount int) error {
	args := m.Called(ctx, tx, id, rating, reviewCount)
	return args.Error(0)
}

type mockBookings struct {
	mock.Mock
}

func (m *mockBookings) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func completedBooking(userID int64) *domain.Booking {
	return &domain.Booking{ID: 8, PropertyID: 5, UserID: &userID, Status: domain.BookingCompleted}
}

func validReview() CreateReviewRequest {
	return CreateReviewRequest{PropertyID: 5, BookingID: 8, Rating: 4, Comment: "Great stay"}
}

func TestCreateReview_RecomputesAggregate(t *testing.T) {
	reviews := new(mockReviews)
	properties := new(mockPropertyWriter)
	bookings := new(mockBookings)

	bookings.On("GetByID", mock.Anything, int64(8)).Return(completedBooking(3), nil)
	reviews.On("ExistsForBooking", mock.Anything, int64(8)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	reviews.On("Aggregate", mock.Anything, mock.Anything, int64(5)).Return(4.5, 2, nil)
	properties.On("UpdateRating", mock.Anything, mock.Anything, int64(5), 4.5, 2).Return(nil)

	rev, err := NewService(reviews, properties, bookings, nil).Create(context.Background(), 3, validReview())

	require.NoError(t, err)
	assert.Equal(t, int64(11), rev.ID)
	assert.Equal(t, 4, rev.Rating)
	properties.AssertExpectations(t)
}

func TestCreateReview_Rejections(t *testing.T) {
	t.Run("not_your_booking", func(t *testing.T) {
		bookings := new(mockBookings)
		bookings.On("GetByID", mock.Anything, int64(8)).Return(completedBooking(99), nil)

		_, err := NewService(new(mockReviews), new(mockPropertyWriter), bookings, nil).
			Create(context.Background(), 3, validReview())

		assert.ErrorIs(t, err, ErrNotYourBooking)
	})

	t.Run("stay_not_completed", func(t *testing.T) {
		b := completedBooking(3)
		b.Status = domain.BookingConfirmed
		bookings := new(mockBookings)
		bookings.On("GetByID", mock.Anything, int64(8)).Return(b, nil)

		_, err := NewService(new(mockReviews), new(mockPropertyWriter), bookings, nil).
			Create(context.Background(), 3, validReview())

		assert.ErrorIs(t, err, ErrStayNotCompleted)
	})

	t.Run("wrong_property", func(t *testing.T) {
		b := completedBooking(3)
		b.PropertyID = 6
		bookings := new(mockBookings)
		bookings.On("GetByID", mock.Anything, int64(8)).Return(b, nil)

		_, err := NewService(new(mockReviews), new(mockPropertyWriter), bookings, nil).
			Create(context.Background(), 3, validReview())

		assert.ErrorIs(t, err, ErrWrongProperty)
	})

	t.Run("already_reviewed", func(t *testing.T) {
		bookings := new(mockBookings)
		bookings.On("GetByID", mock.Anything, int64(8)).Return(completedBooking(3), nil)
		reviews := new(mockReviews)
		reviews.On("ExistsForBooking", mock.Anything, int64(8)).Return(true, nil)

		_, err := NewService(reviews, new(mockPropertyWriter), bookings, nil).
			Create(context.Background(), 3, validReview())

		assert.ErrorIs(t, err, ErrAlreadyReviewed)
		reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rating_out_of_range", func(t *testing.T) {
		req := validReview()
		req.Rating = 6

		_, err := NewService(new(mockReviews), new(mockPropertyWriter), new(mockBookings), nil).
			Create(context.Background(), 3, req)

		assert.ErrorIs(t, err, ErrInvalidRating)
	})
}
