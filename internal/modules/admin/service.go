package admin

import (
	"context"
	"errors"

	"stayhub/internal/domain"
)

var ErrCannotBanAdmin = errors.New("admin accounts cannot be banned")

type Service struct {
	users      UserRepository
	properties PropertyRepository
	bookings   BookingStats
}

func NewService(users UserRepository, properties PropertyRepository, bookings BookingStats) *Service {
	return &Service{users: users, properties: properties, bookings: bookings}
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.users.List(ctx, limit, offset)
}

func (s *Service) BanUser(ctx context.Context, id int64, reason string) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.Role == domain.RoleAdmin {
		return ErrCannotBanAdmin
	}
	return s.users.SetBanned(ctx, id, true, reason)
}

func (s *Service) UnbanUser(ctx context.Context, id int64) error {
	return s.users.SetBanned(ctx, id, false, "")
}

func (s *Service) FeatureProperty(ctx context.Context, id int64, featured bool) error {
	if _, err := s.properties.GetByID(ctx, id); err != nil {
		return err
	}
	return s.properties.SetFeatured(ctx, id, featured)
}

// Stats aggregates the dashboard counters. Revenue counts paid bookings only.
func (s *Service) Stats(ctx context.Context) (*PlatformStats, error) {
	var stats PlatformStats

	_, userTotal, err := s.users.List(ctx, 1, 0)
	if err != nil {
		return nil, err
	}
	stats.Users = userTotal

	if stats.Properties, err = s.properties.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Bookings, err = s.bookings.Count(ctx); err != nil {
		return nil, err
	}
	if stats.GrossRevenue, err = s.bookings.GrossRevenue(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}
