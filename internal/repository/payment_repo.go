package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.GatewayPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByInvID(ctx context.Context, invID int64) (*domain.GatewayPayment, error) {
	var p domain.GatewayPayment
	if err := r.db.WithContext(ctx).Where("inv_id = ?", invID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkPaidIdempotent transitions the payment to paid and reports whether
// this call was the one that did it. A second callback for the same invoice
// is a no-op.
func (r *PaymentRepository) MarkPaidIdempotent(ctx context.Context, invID int64, rawBody string, paidAt time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.GatewayPayment{}).
		Where("inv_id = ? AND status <> ?", invID, string(domain.GatewayPaymentPaid)).
		Updates(map[string]any{
			"status":       string(domain.GatewayPaymentPaid),
			"raw_callback": rawBody,
			"paid_at":      paidAt,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, invID int64, rawBody, reason string) error {
	return r.db.WithContext(ctx).Model(&domain.GatewayPayment{}).
		Where("inv_id = ?", invID).
		Updates(map[string]any{
			"status":       string(domain.GatewayPaymentFailed),
			"raw_callback": rawBody,
			"fail_reason":  reason,
		}).Error
}
