package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// GuestInfo is the contact payload captured at submission time.
type GuestInfo struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

// Booking is the persisted record of a stay. TotalAmount is always the
// server-computed breakdown total; bookings are historical records and are
// never deleted.
type Booking struct {
	ID            int64         `json:"id"`
	PropertyID    int64         `json:"property_id" validate:"required"`
	UserID        *int64        `json:"user_id,omitempty"`
	CheckIn       time.Time     `json:"check_in" validate:"required"`
	CheckOut      time.Time     `json:"check_out" validate:"required"`
	Guests        int           `json:"guests" validate:"required,gte=1"`
	TotalAmount   float64       `json:"total_amount" validate:"gte=0"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	GuestInfo     GuestInfo     `json:"guest_info" gorm:"serializer:json"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	CancelledAt   *time.Time    `json:"cancelled_at,omitempty"`

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
