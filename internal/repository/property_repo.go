package repository

import (
	"context"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var p domain.Property
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).Model(&domain.Property{}).Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *PropertyRepository) SetFeatured(ctx context.Context, id int64, featured bool) error {
	return r.db.WithContext(ctx).Model(&domain.Property{}).Where("id = ?", id).
		Update("is_featured", featured).Error
}

// ListActive returns the active catalog newest-first with a deterministic
// id tiebreak, the order search results are served in.
func (r *PropertyRepository) ListActive(ctx context.Context) ([]domain.Property, error) {
	var props []domain.Property
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&props).Error
	return props, err
}

func (r *PropertyRepository) ListByHost(ctx context.Context, hostID int64) ([]domain.Property, error) {
	var props []domain.Property
	err := r.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("created_at DESC, id DESC").
		Find(&props).Error
	return props, err
}

// UpdateRating stores a recomputed aggregate; called inside the review
// creation transaction.
func (r *PropertyRepository) UpdateRating(ctx context.Context, tx *gorm.DB, id int64, rating float64, reviewCount int) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Model(&domain.Property{}).Where("id = ?", id).
		Updates(map[string]any{"rating": rating, "review_count": reviewCount}).Error
}

func (r *PropertyRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Property{}).Count(&cnt).Error
	return cnt, err
}
