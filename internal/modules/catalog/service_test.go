package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/cache"
)

type mockPropertyRepo struct {
	mock.Mock
}

func (m *mockPropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 31
	}
	return args.Error(0)
}

func (m *mockPropertyRepo) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Property), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyRepo) Update(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPropertyRepo) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *mockPropertyRepo) SetFeatured(ctx context.Context, id int64, featured bool) error {
	args := m.Called(ctx, id, featured)
	return args.Error(0)
}

func (m *mockPropertyRepo) ListActive(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.Property), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyRepo) ListByHost(ctx context.Context, hostID int64) ([]domain.Property, error) {
	args := m.Called(ctx, hostID)
	if v := args.Get(0); v != nil {
		return v.([]domain.Property), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyRepo) UpdateRating(ctx context.Context, tx *gorm.DB, id int64, rating float64, reviewCount int) error {
	args := m.Called(ctx, tx, id, rating, reviewCount)
	return args.Error(0)
}

func (m *mockPropertyRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestSearch_CachesFilteredResults(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("ListActive", mock.Anything).Return(fixtureCatalog()[:3], nil)

	svc := NewService(repo, cache.NewMemoryStore(16), time.Minute)
	criteria := Criteria{Location: "Riyadh", Guests: 1, MaxPrice: 2000}

	first, err := svc.Search(context.Background(), criteria)
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), criteria)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
	repo.AssertNumberOfCalls(t, "ListActive", 1)
}

func TestSearch_DistinctCriteriaMissCache(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("ListActive", mock.Anything).Return(fixtureCatalog()[:3], nil)

	svc := NewService(repo, cache.NewMemoryStore(16), time.Minute)

	_, err := svc.Search(context.Background(), Criteria{Location: "Riyadh", Guests: 1, MaxPrice: 2000})
	require.NoError(t, err)
	_, err = svc.Search(context.Background(), Criteria{Location: "Jeddah", Guests: 1, MaxPrice: 2000})
	require.NoError(t, err)

	repo.AssertNumberOfCalls(t, "ListActive", 2)
}

func TestSearch_NilStoreStillWorks(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("ListActive", mock.Anything).Return(fixtureCatalog()[:3], nil)

	svc := NewService(repo, nil, time.Minute)

	got, err := svc.Search(context.Background(), Criteria{Guests: 1, MaxPrice: 2000})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestCreateProperty_Validation(t *testing.T) {
	t.Run("unknown_type", func(t *testing.T) {
		_, err := NewService(new(mockPropertyRepo), nil, time.Minute).
			CreateProperty(context.Background(), 1, CreatePropertyRequest{
				Title: "X", Location: "Riyadh", PropertyType: "castle", MaxGuests: 2,
			})
		assert.ErrorIs(t, err, ErrInvalidPropertyType)
	})

	t.Run("missing_title", func(t *testing.T) {
		_, err := NewService(new(mockPropertyRepo), nil, time.Minute).
			CreateProperty(context.Background(), 1, CreatePropertyRequest{
				Location: "Riyadh", PropertyType: "villa", MaxGuests: 2,
			})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("success_sets_host_and_active", func(t *testing.T) {
		repo := new(mockPropertyRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		p, err := NewService(repo, nil, time.Minute).
			CreateProperty(context.Background(), 9, CreatePropertyRequest{
				Title: "New villa", Location: "Riyadh", PropertyType: "villa",
				PricePerNight: 800, MaxGuests: 6,
			})

		require.NoError(t, err)
		assert.Equal(t, int64(9), p.HostID)
		assert.True(t, p.IsActive)
		assert.Equal(t, domain.PropertyVilla, p.PropertyType)
	})
}

func TestUpdateProperty_Ownership(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Property{ID: 3, HostID: 1, Title: "T", Location: "L", MaxGuests: 2}, nil)

	_, err := NewService(repo, nil, time.Minute).
		UpdateProperty(context.Background(), 2, 3, UpdatePropertyRequest{})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeactivateProperty(t *testing.T) {
	repo := new(mockPropertyRepo)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Property{ID: 3, HostID: 1}, nil)
	repo.On("SetActive", mock.Anything, int64(3), false).Return(nil)

	err := NewService(repo, nil, time.Minute).DeactivateProperty(context.Background(), 1, 3)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
