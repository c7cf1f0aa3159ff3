package payment

import (
	"context"
	"time"

	"stayhub/internal/domain"
)

type PaymentRepository interface {
	GetByInvID(ctx context.Context, invID int64) (*domain.GatewayPayment, error)
	MarkPaidIdempotent(ctx context.Context, invID int64, rawBody string, paidAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, invID int64, rawBody, reason string) error
}

type BookingWriter interface {
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}
