package domain

import "time"

type GatewayPaymentStatus string

const (
	GatewayPaymentCreated GatewayPaymentStatus = "created"
	GatewayPaymentPaid    GatewayPaymentStatus = "paid"
	GatewayPaymentFailed  GatewayPaymentStatus = "failed"
)

// GatewayPayment is the per-booking record handed to the payment gateway.
// Amount is kept as the exact decimal string sent to the gateway so callback
// amounts can be compared without float drift.
type GatewayPayment struct {
	ID          int64                `json:"id"`
	BookingID   int64                `json:"booking_id"`
	InvID       int64                `json:"inv_id"`
	Amount      string               `json:"amount"`
	Description string               `json:"description,omitempty"`
	Status      GatewayPaymentStatus `json:"status"`
	Signature   string               `json:"-"`
	RawCallback string               `json:"-" gorm:"type:text"`
	FailReason  string               `json:"fail_reason,omitempty"`
	PaidAt      *time.Time           `json:"paid_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
