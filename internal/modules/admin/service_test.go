package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stayhub/internal/domain"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsers) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockUsers) SetBanned(ctx context.Context, id int64, banned bool, reason string) error {
	args := m.Called(ctx, id, banned, reason)
	return args.Error(0)
}

type mockProperties struct {
	mock.Mock
}

func (m *mockProperties) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Property), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProperties) SetFeatured(ctx context.Context, id int64, featured bool) error {
	args := m.Called(ctx, id, featured)
	return args.Error(0)
}

func (m *mockProperties) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockBookingStats struct {
	mock.Mock
}

func (m *mockBookingStats) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingStats) GrossRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func TestBanUser(t *testing.T) {
	t.Run("bans_guest", func(t *testing.T) {
		users := new(mockUsers)
		users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3, Role: domain.RoleGuest}, nil)
		users.On("SetBanned", mock.Anything, int64(3), true, "spam").Return(nil)

		err := NewService(users, new(mockProperties), new(mockBookingStats)).BanUser(context.Background(), 3, "spam")

		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("refuses_admin", func(t *testing.T) {
		users := new(mockUsers)
		users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)

		err := NewService(users, new(mockProperties), new(mockBookingStats)).BanUser(context.Background(), 1, "nope")

		assert.ErrorIs(t, err, ErrCannotBanAdmin)
		users.AssertNotCalled(t, "SetBanned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStats(t *testing.T) {
	users := new(mockUsers)
	properties := new(mockProperties)
	bookings := new(mockBookingStats)

	users.On("List", mock.Anything, 1, 0).Return(nil, int64(120), nil)
	properties.On("Count", mock.Anything).Return(int64(34), nil)
	bookings.On("Count", mock.Anything).Return(int64(210), nil)
	bookings.On("GrossRevenue", mock.Anything).Return(92150.0, nil)

	stats, err := NewService(users, properties, bookings).Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &PlatformStats{Users: 120, Properties: 34, Bookings: 210, GrossRevenue: 92150.0}, stats)
}
