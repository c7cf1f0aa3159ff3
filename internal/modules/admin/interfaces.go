package admin

import (
	"context"

	"stayhub/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	SetBanned(ctx context.Context, id int64, banned bool, reason string) error
}

type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	SetFeatured(ctx context.Context, id int64, featured bool) error
	Count(ctx context.Context) (int64, error)
}

type BookingStats interface {
	Count(ctx context.Context) (int64, error)
	GrossRevenue(ctx context.Context) (float64, error)
}
