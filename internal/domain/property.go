package domain

import "time"

type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyVilla     PropertyType = "villa"
	PropertyChalet    PropertyType = "chalet"
	PropertyStudio    PropertyType = "studio"
	PropertyCabin     PropertyType = "cabin"
)

// Property is a rentable unit. Properties are never hard-deleted, only
// deactivated via IsActive.
type Property struct {
	ID            int64        `json:"id"`
	HostID        int64        `json:"host_id"`
	Title         string       `json:"title" validate:"required"`
	Description   string       `json:"description,omitempty"`
	Location      string       `json:"location" validate:"required"`
	PricePerNight float64      `json:"price_per_night" validate:"gte=0"`
	MaxGuests     int          `json:"max_guests" validate:"required,gte=1"`
	Bedrooms      int          `json:"bedrooms"`
	Bathrooms     int          `json:"bathrooms"`
	PropertyType  PropertyType `json:"property_type"`
	Amenities     []string     `json:"amenities,omitempty" gorm:"serializer:json"`
	Photos        []string     `json:"photos,omitempty" gorm:"serializer:json"`
	Rating        float64      `json:"rating"`
	ReviewCount   int          `json:"review_count"`
	IsActive      bool         `json:"is_active"`
	IsFeatured    bool         `json:"is_featured"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func ParsePropertyType(s string) (PropertyType, bool) {
	switch PropertyType(s) {
	case PropertyApartment, PropertyVilla, PropertyChalet, PropertyStudio, PropertyCabin:
		return PropertyType(s), true
	}
	return "", false
}

// HasAmenities reports whether every requested tag is present on the
// property (subset test, not intersection-any).
func (p *Property) HasAmenities(tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	have := make(map[string]bool, len(p.Amenities))
	for _, a := range p.Amenities {
		have[a] = true
	}
	for _, t := range tags {
		if !have[t] {
			return false
		}
	}
	return true
}
