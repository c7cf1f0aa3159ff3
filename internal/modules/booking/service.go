package booking

import (
	"context"
	"log"
	"math"
	"strconv"
	"time"

	"stayhub/internal/domain"
	"stayhub/internal/modules/pricing"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings   BookingRepository
	properties PropertyRepository
	notifier   Notifier
	invID      func() int64
}

// NewService wires the booking validator. invID generates gateway invoice
// ids; pass nil for the time-based default.
func NewService(bookings BookingRepository, properties PropertyRepository, notifier Notifier, invID func() int64) *Service {
	if invID == nil {
		invID = func() int64 { return time.Now().UnixNano() / 1000 }
	}
	return &Service{
		bookings:   bookings,
		properties: properties,
		notifier:   notifier,
		invID:      invID,
	}
}

// Create validates the submission against the property and persists the
// booking together with its gateway payment record. The stored total is
// always the server-computed one; the client's totalAmount is advisory.
func (s *Service) Create(ctx context.Context, userID *int64, req CreateBookingRequest) (*domain.Booking, *pricing.Breakdown, error) {
	p, err := s.properties.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, nil, err
	}
	if !p.IsActive {
		return nil, nil, ErrPropertyUnavailable
	}

	checkIn, checkOut, verr := validateSubmission(req, p.MaxGuests)
	if verr != nil {
		return nil, nil, verr
	}

	breakdown := pricing.Compute(req.CheckIn, req.CheckOut, p.PricePerNight)
	if req.TotalAmount != 0 && math.Abs(req.TotalAmount-breakdown.Total) > 0.01 {
		log.Printf("level=warn msg=\"client total mismatch\" property_id=%d client=%.2f server=%.2f",
			p.ID, req.TotalAmount, breakdown.Total)
	}

	b := &domain.Booking{
		PropertyID:    p.ID,
		UserID:        userID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        req.Guests,
		TotalAmount:   breakdown.Total,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
		GuestInfo:     req.GuestInfo,
	}
	payment := &domain.GatewayPayment{
		InvID:       s.invID(),
		Amount:      strconv.FormatFloat(breakdown.Total, 'f', 2, 64),
		Description: "Stay at " + p.Title,
		Status:      domain.GatewayPaymentCreated,
	}

	if err := s.bookings.CreateWithPayment(ctx, b, payment); err != nil {
		return nil, nil, err
	}

	if s.notifier != nil && req.GuestInfo.Phone != "" {
		if err := s.notifier.SendBookingConfirmation(ctx, req.GuestInfo.Phone, b); err != nil {
			log.Printf("level=warn msg=\"confirmation sms failed\" booking_id=%d err=%v", b.ID, err)
		}
	}

	return b, &breakdown, nil
}

// validateSubmission enforces the submission rules: required fields first,
// then date ordering, then guest capacity. The first failure wins.
func validateSubmission(req CreateBookingRequest, maxGuests int) (time.Time, time.Time, *ValidationError) {
	var zero time.Time

	if req.CheckIn == "" {
		return zero, zero, missingField("checkIn")
	}
	if req.CheckOut == "" {
		return zero, zero, missingField("checkOut")
	}
	if req.GuestInfo.FirstName == "" {
		return zero, zero, missingField("firstName")
	}
	if req.GuestInfo.LastName == "" {
		return zero, zero, missingField("lastName")
	}
	if req.GuestInfo.Email == "" {
		return zero, zero, missingField("email")
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return zero, zero, &ValidationError{Kind: InvalidDateRange, Field: "checkIn"}
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return zero, zero, &ValidationError{Kind: InvalidDateRange, Field: "checkOut"}
	}
	if !checkOut.After(checkIn) {
		return zero, zero, &ValidationError{Kind: InvalidDateRange}
	}

	if req.Guests < 1 || req.Guests > maxGuests {
		return zero, zero, &ValidationError{Kind: GuestCountExceeded, Field: "guests"}
	}

	return checkIn, checkOut, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64, userID *int64, isAdmin bool) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Anonymous bookings have no owner to check against.
	if b.UserID != nil && !isAdmin {
		if userID == nil || *userID != *b.UserID {
			return nil, ErrForbidden
		}
	}
	return b, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.bookings.GetByUserID(ctx, userID, limit, offset)
}

// Cancel moves a pending or confirmed booking to cancelled. Completed
// stays cannot be cancelled.
func (s *Service) Cancel(ctx context.Context, id int64, userID *int64, isAdmin bool) error {
	b, err := s.GetBooking(ctx, id, userID, isAdmin)
	if err != nil {
		return err
	}
	if b.Status == domain.BookingCompleted || b.Status == domain.BookingCancelled {
		return ErrNotCancellable
	}
	return s.bookings.UpdateStatus(ctx, id, domain.BookingCancelled)
}
