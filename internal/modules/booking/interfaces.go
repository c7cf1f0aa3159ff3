package booking

import (
	"context"

	"stayhub/internal/domain"
)

type BookingRepository interface {
	CreateWithPayment(ctx context.Context, b *domain.Booking, p *domain.GatewayPayment) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// Notifier delivers the confirmation message. Implementations talk to an
// external SMS provider; delivery is best-effort.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, phone string, b *domain.Booking) error
}
