package catalog

import (
	"context"
	"encoding/json"
	"time"

	"stayhub/internal/domain"
	"stayhub/internal/pkg/cache"
	"stayhub/internal/pkg/validator"
)

type Service struct {
	properties PropertyRepository
	store      cache.Store
	cacheTTL   time.Duration
}

func NewService(properties PropertyRepository, store cache.Store, cacheTTL time.Duration) *Service {
	return &Service{
		properties: properties,
		store:      store,
		cacheTTL:   cacheTTL,
	}
}

// Search loads the active catalog and applies the criteria in memory.
// Results come back newest-first (repository ordering) and are cached as
// serialized JSON under the canonical criteria key.
func (s *Service) Search(ctx context.Context, c Criteria) ([]domain.Property, error) {
	key := c.CacheKey()
	if s.store != nil {
		if raw, ok := s.store.Get(key); ok {
			var cached []domain.Property
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	catalog, err := s.properties.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	matched := FilterProperties(catalog, c)

	if s.store != nil {
		if raw, err := json.Marshal(matched); err == nil {
			s.store.Set(key, raw, s.cacheTTL)
		}
	}
	return matched, nil
}

func (s *Service) Browse(ctx context.Context) ([]domain.Property, error) {
	return s.properties.ListActive(ctx)
}

func (s *Service) GetProperty(ctx context.Context, id int64) (*domain.Property, error) {
	return s.properties.GetByID(ctx, id)
}

func (s *Service) ListByHost(ctx context.Context, hostID int64) ([]domain.Property, error) {
	return s.properties.ListByHost(ctx, hostID)
}

func (s *Service) CreateProperty(ctx context.Context, hostID int64, req CreatePropertyRequest) (*domain.Property, error) {
	pt, ok := domain.ParsePropertyType(req.PropertyType)
	if !ok {
		return nil, ErrInvalidPropertyType
	}

	p := &domain.Property{
		HostID:        hostID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		PropertyType:  pt,
		Amenities:     req.Amenities,
		Photos:        req.Photos,
		IsActive:      true,
	}
	if fails := validator.Validate(p); fails != nil {
		return nil, ErrValidation
	}

	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateProperty(ctx context.Context, hostID, propertyID int64, req UpdatePropertyRequest) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if p.HostID != hostID {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.PricePerNight != nil && *req.PricePerNight >= 0 {
		p.PricePerNight = *req.PricePerNight
	}
	if req.MaxGuests != nil && *req.MaxGuests >= 1 {
		p.MaxGuests = *req.MaxGuests
	}
	if req.Bedrooms != nil {
		p.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		p.Bathrooms = *req.Bathrooms
	}
	if req.PropertyType != nil {
		pt, ok := domain.ParsePropertyType(*req.PropertyType)
		if !ok {
			return nil, ErrInvalidPropertyType
		}
		p.PropertyType = pt
	}
	if req.Amenities != nil {
		p.Amenities = *req.Amenities
	}
	if req.Photos != nil {
		p.Photos = *req.Photos
	}
	if fails := validator.Validate(p); fails != nil {
		return nil, ErrValidation
	}

	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeactivateProperty soft-deletes: the listing drops out of search but the
// row (and its booking history) stays.
func (s *Service) DeactivateProperty(ctx context.Context, hostID, propertyID int64) error {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if p.HostID != hostID {
		return ErrForbidden
	}
	return s.properties.SetActive(ctx, propertyID, false)
}
