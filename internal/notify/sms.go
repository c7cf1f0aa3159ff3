package notify

import (
	"context"
	"log"

	"stayhub/internal/domain"
)

// LogSMS is the default notifier: it writes the confirmation to the log
// instead of a provider. Swap in a real implementation behind the booking
// module's Notifier interface when an SMS gateway is configured.
type LogSMS struct{}

func (LogSMS) SendBookingConfirmation(ctx context.Context, phone string, b *domain.Booking) error {
	log.Printf("level=info msg=\"booking confirmation sms\" phone=%s booking_id=%d total=%.2f",
		phone, b.ID, b.TotalAmount)
	return nil
}
