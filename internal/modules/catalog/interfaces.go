package catalog

import (
	"context"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	SetActive(ctx context.Context, id int64, active bool) error
	SetFeatured(ctx context.Context, id int64, featured bool) error
	ListActive(ctx context.Context) ([]domain.Property, error)
	ListByHost(ctx context.Context, hostID int64) ([]domain.Property, error)
	UpdateRating(ctx context.Context, tx *gorm.DB, id int64, rating float64, reviewCount int) error
	Count(ctx context.Context) (int64, error)
}
