package chat

import (
	"context"
	"strings"

	"stayhub/internal/domain"
)

// RuleCompleter is the built-in fallback used when no model endpoint is
// configured. It answers common marketplace questions from keywords.
type RuleCompleter struct{}

func (RuleCompleter) Complete(ctx context.Context, history []domain.ChatMessage) (string, error) {
	var last string
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == domain.ChatRoleUser {
			last = strings.ToLower(history[i].Content)
			break
		}
	}

	switch {
	case strings.Contains(last, "cancel"):
		return "You can cancel a pending or confirmed booking from your bookings page. Completed stays cannot be cancelled.", nil
	case strings.Contains(last, "price") || strings.Contains(last, "fee"):
		return "The total includes the nightly rate, a 14% service fee, a flat 50 cleaning fee, and 12% tax on the subtotal.", nil
	case strings.Contains(last, "payment") || strings.Contains(last, "pay"):
		return "After submitting a booking you are redirected to our payment partner. Your booking is confirmed once payment is captured.", nil
	case strings.Contains(last, "host"):
		return "To list your property, register a host account and add your listing from the host dashboard.", nil
	default:
		return "I can help with searching stays, booking, pricing, payments, and cancellations. What would you like to know?", nil
	}
}
