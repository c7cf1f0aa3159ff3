package catalog

import (
	"sort"
	"strconv"
	"strings"

	"stayhub/internal/domain"
)

const (
	DefaultGuests   = 1
	DefaultMinPrice = 0.0
	DefaultMaxPrice = 2000.0
)

// Criteria is the set of user-supplied search constraints. Zero-value
// optional fields mean "no constraint"; Guests/MinPrice/MaxPrice always
// carry their defaults after ParseCriteria.
type Criteria struct {
	Location     string
	CheckIn      string
	CheckOut     string
	Guests       int
	MinPrice     float64
	MaxPrice     float64
	PropertyType string
	Amenities    []string
}

// ParseCriteria builds Criteria from raw query values. Parsing is
// defensive: a missing, empty or non-numeric guests value is coerced to 1,
// and malformed price bounds fall back to the defaults instead of being
// rejected.
func ParseCriteria(get func(string) string) Criteria {
	c := Criteria{
		Location:     get("location"),
		CheckIn:      get("checkIn"),
		CheckOut:     get("checkOut"),
		Guests:       DefaultGuests,
		MinPrice:     DefaultMinPrice,
		MaxPrice:     DefaultMaxPrice,
		PropertyType: strings.TrimSpace(get("propertyType")),
	}

	if g, err := strconv.Atoi(strings.TrimSpace(get("guests"))); err == nil && g > 0 {
		c.Guests = g
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(get("minPrice")), 64); err == nil && v >= 0 {
		c.MinPrice = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(get("maxPrice")), 64); err == nil && v >= 0 {
		c.MaxPrice = v
	}

	if raw := get("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			a = strings.TrimSpace(a)
			if a != "" {
				c.Amenities = append(c.Amenities, a)
			}
		}
	}

	return c
}

// CacheKey is a canonical representation of the criteria used to key the
// search response cache.
func (c Criteria) CacheKey() string {
	amenities := append([]string(nil), c.Amenities...)
	sort.Strings(amenities)

	var b strings.Builder
	b.WriteString("search:")
	b.WriteString(c.Location)
	b.WriteByte('|')
	b.WriteString(c.CheckIn)
	b.WriteByte('|')
	b.WriteString(c.CheckOut)
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(c.Guests))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(c.MinPrice, 'f', 2, 64))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(c.MaxPrice, 'f', 2, 64))
	b.WriteByte('|')
	b.WriteString(c.PropertyType)
	b.WriteByte('|')
	b.WriteString(strings.Join(amenities, ","))
	return b.String()
}

// Match reports whether a property satisfies every criterion. Inactive
// properties never match. Location comparison is exact and case-sensitive.
func Match(p *domain.Property, c Criteria) bool {
	if !p.IsActive {
		return false
	}
	if c.Location != "" && p.Location != c.Location {
		return false
	}
	if p.MaxGuests < c.Guests {
		return false
	}
	if p.PricePerNight < c.MinPrice || p.PricePerNight > c.MaxPrice {
		return false
	}
	if c.PropertyType != "" && string(p.PropertyType) != c.PropertyType {
		return false
	}
	return p.HasAmenities(c.Amenities)
}

// FilterProperties returns the subset of catalog matching c, preserving
// input order (callers supply the catalog newest-first).
func FilterProperties(catalog []domain.Property, c Criteria) []domain.Property {
	out := make([]domain.Property, 0, len(catalog))
	for i := range catalog {
		if Match(&catalog[i], c) {
			out = append(out, catalog[i])
		}
	}
	return out
}
