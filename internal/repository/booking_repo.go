package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) DB() *gorm.DB { return r.db }

type bookingModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	PropertyID    int64      `gorm:"column:property_id"`
	UserID        *int64     `gorm:"column:user_id"`
	CheckIn       time.Time  `gorm:"column:check_in"`
	CheckOut      time.Time  `gorm:"column:check_out"`
	Guests        int        `gorm:"column:guests"`
	TotalAmount   float64    `gorm:"column:total_amount"`
	Status        string     `gorm:"column:status"`
	PaymentStatus string     `gorm:"column:payment_status"`
	GuestInfo     string     `gorm:"column:guest_info"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	CancelledAt   *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var info domain.GuestInfo
	if m.GuestInfo != "" {
		_ = json.Unmarshal([]byte(m.GuestInfo), &info)
	}

	return &domain.Booking{
		ID:            m.ID,
		PropertyID:    m.PropertyID,
		UserID:        m.UserID,
		CheckIn:       m.CheckIn,
		CheckOut:      m.CheckOut,
		Guests:        m.Guests,
		TotalAmount:   m.TotalAmount,
		Status:        domain.BookingStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		GuestInfo:     info,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CancelledAt:   m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	info, _ := json.Marshal(b.GuestInfo)

	return bookingModel{
		ID:            b.ID,
		PropertyID:    b.PropertyID,
		UserID:        b.UserID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Guests:        b.Guests,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		GuestInfo:     string(info),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// CreateWithPayment persists the booking and its gateway payment record in
// one transaction so a payment-less booking can never exist.
func (r *BookingRepository) CreateWithPayment(ctx context.Context, b *domain.Booking, p *domain.GatewayPayment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)

		p.BookingID = b.ID
		return tx.Create(p).Error
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetByPropertyID(ctx context.Context, propertyID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	updates := map[string]any{"status": string(status)}
	if status == domain.BookingCancelled {
		updates["cancelled_at"] = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Updates(updates).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).
		Update("payment_status", string(status)).Error
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&cnt).Error
	return cnt, err
}

// GrossRevenue sums total_amount over paid bookings.
func (r *BookingRepository) GrossRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("payment_status = ?", string(domain.PaymentPaid)).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}
