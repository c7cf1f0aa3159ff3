package payment

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"stayhub/internal/domain"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrAmountMismatch   = errors.New("amount mismatch")
)

type Service struct {
	payments PaymentRepository
	bookings BookingWriter
	secret   string
	loggerf  func(format string, args ...interface{})
}

func NewService(payments PaymentRepository, bookings BookingWriter, secret string, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		payments: payments,
		bookings: bookings,
		secret:   secret,
		loggerf:  loggerf,
	}
}

// HandleCallback processes the gateway result notification. The signature
// covers amount:invID:secret; the amount must match the stored payment
// exactly. A repeated callback for an already-paid invoice is acknowledged
// without side effects.
func (s *Service) HandleCallback(ctx context.Context, amount string, invID int64, signature, rawBody string) (string, error) {
	valid := strings.EqualFold(signature, s.Sign(amount, invID))
	s.loggerf("level=info msg=\"gateway callback signature validation\" inv_id=%d signature_valid=%t", invID, valid)
	if !valid {
		_ = s.payments.MarkFailed(ctx, invID, rawBody, "invalid signature")
		return "", ErrInvalidSignature
	}

	p, err := s.payments.GetByInvID(ctx, invID)
	if err != nil {
		return "", err
	}
	if !amountEqual(amount, p.Amount) {
		reason := fmt.Sprintf("amount mismatch callback=%s expected=%s", amount, p.Amount)
		_ = s.payments.MarkFailed(ctx, invID, rawBody, reason)
		return "", ErrAmountMismatch
	}

	changed, err := s.payments.MarkPaidIdempotent(ctx, invID, rawBody, time.Now().UTC())
	if err != nil {
		return "", err
	}
	if changed {
		if err := s.bookings.UpdatePaymentStatus(ctx, p.BookingID, domain.PaymentPaid); err != nil {
			s.loggerf("level=error msg=\"failed to mark booking paid\" booking_id=%d err=%v", p.BookingID, err)
		}
		if err := s.bookings.UpdateStatus(ctx, p.BookingID, domain.BookingConfirmed); err != nil {
			s.loggerf("level=error msg=\"failed to confirm booking\" booking_id=%d err=%v", p.BookingID, err)
		}
	} else {
		s.loggerf("level=info msg=\"idempotent callback already paid\" inv_id=%d", invID)
	}

	return "OK" + strconv.FormatInt(invID, 10), nil
}

// Sign computes the callback signature for an amount/invoice pair.
func (s *Service) Sign(amount string, invID int64) string {
	return md5Hex(amount + ":" + strconv.FormatInt(invID, 10) + ":" + s.secret)
}

// amountEqual compares decimal strings exactly, without float drift.
func amountEqual(a, b string) bool {
	ar, ok := new(big.Rat).SetString(strings.TrimSpace(a))
	if !ok {
		return false
	}
	br, ok := new(big.Rat).SetString(strings.TrimSpace(b))
	if !ok {
		return false
	}
	return ar.Cmp(br) == 0
}

func md5Hex(s string) string {
	h := md5.Sum([]byte(s))
	return strings.ToUpper(hex.EncodeToString(h[:]))
}
