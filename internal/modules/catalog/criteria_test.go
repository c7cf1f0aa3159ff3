package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/internal/domain"
)

func fixtureCatalog() []domain.Property {
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Property{
		{
			ID: 3, Title: "Corniche apartment", Location: "Jeddah",
			PricePerNight: 450, MaxGuests: 4, PropertyType: domain.PropertyApartment,
			Amenities: []string{"wifi", "pool"}, IsActive: true,
			CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID: 2, Title: "Desert villa", Location: "Riyadh",
			PricePerNight: 1200, MaxGuests: 8, PropertyType: domain.PropertyVilla,
			Amenities: []string{"wifi", "pool", "gym", "parking"}, IsActive: true,
			CreatedAt: base.Add(24 * time.Hour),
		},
		{
			ID: 1, Title: "Old town studio", Location: "Riyadh",
			PricePerNight: 180, MaxGuests: 2, PropertyType: domain.PropertyStudio,
			Amenities: []string{"wifi"}, IsActive: true,
			CreatedAt: base,
		},
		{
			ID: 4, Title: "Delisted chalet", Location: "Riyadh",
			PricePerNight: 300, MaxGuests: 6, PropertyType: domain.PropertyChalet,
			Amenities: []string{"wifi", "pool", "gym"}, IsActive: false,
			CreatedAt: base.Add(72 * time.Hour),
		},
	}
}

func queryOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseCriteria_Defaults(t *testing.T) {
	c := ParseCriteria(queryOf(map[string]string{}))

	assert.Equal(t, 1, c.Guests)
	assert.Equal(t, 0.0, c.MinPrice)
	assert.Equal(t, 2000.0, c.MaxPrice)
	assert.Empty(t, c.Location)
	assert.Empty(t, c.Amenities)
}

func TestParseCriteria_GuestsCoercion(t *testing.T) {
	// The NaN-propagation bug class: non-numeric guests must behave
	// exactly like guests=1.
	for _, raw := range []string{"", "abc", "-2", "0", "1.5"} {
		c := ParseCriteria(queryOf(map[string]string{"guests": raw}))
		assert.Equal(t, 1, c.Guests, "guests=%q must coerce to 1", raw)
	}

	c := ParseCriteria(queryOf(map[string]string{"guests": "5"}))
	assert.Equal(t, 5, c.Guests)
}

func TestParseCriteria_Amenities(t *testing.T) {
	c := ParseCriteria(queryOf(map[string]string{"amenities": "wifi, pool ,,gym"}))
	assert.Equal(t, []string{"wifi", "pool", "gym"}, c.Amenities)
}

func TestFilter_InactiveNeverMatches(t *testing.T) {
	// Even a criteria set tailored to the inactive property excludes it.
	got := FilterProperties(fixtureCatalog(), Criteria{
		Location: "Riyadh", Guests: 6, MinPrice: 250, MaxPrice: 350,
		PropertyType: "chalet", Amenities: []string{"wifi", "pool", "gym"},
	})
	assert.Empty(t, got)

	all := FilterProperties(fixtureCatalog(), Criteria{Guests: 1, MaxPrice: 2000})
	for _, p := range all {
		assert.True(t, p.IsActive)
	}
}

func TestFilter_LocationExactCaseSensitive(t *testing.T) {
	riyadh := FilterProperties(fixtureCatalog(), Criteria{Location: "Riyadh", Guests: 1, MaxPrice: 2000})
	assert.Len(t, riyadh, 2)

	lower := FilterProperties(fixtureCatalog(), Criteria{Location: "riyadh", Guests: 1, MaxPrice: 2000})
	assert.Empty(t, lower, "location matching is exact and case-sensitive")
}

func TestFilter_GuestCapacity(t *testing.T) {
	got := FilterProperties(fixtureCatalog(), Criteria{Guests: 5, MaxPrice: 2000})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFilter_PriceBand(t *testing.T) {
	got := FilterProperties(fixtureCatalog(), Criteria{Guests: 1, MinPrice: 200, MaxPrice: 500})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)

	// Default band tops out at 2000: the 1200/night villa is in, nothing above.
	got = FilterProperties(fixtureCatalog(), Criteria{Guests: 1, MinPrice: 0, MaxPrice: 2000})
	assert.Len(t, got, 3)
}

func TestFilter_AmenitiesSubsetNotIntersection(t *testing.T) {
	catalog := []domain.Property{
		{ID: 10, MaxGuests: 2, PricePerNight: 100, Amenities: []string{"wifi", "pool"}, IsActive: true},
	}

	// Missing even one requested tag excludes the property.
	assert.Empty(t, FilterProperties(catalog, Criteria{Guests: 1, MaxPrice: 2000, Amenities: []string{"wifi", "gym"}}))
	assert.Len(t, FilterProperties(catalog, Criteria{Guests: 1, MaxPrice: 2000, Amenities: []string{"wifi"}}), 1)
	assert.Len(t, FilterProperties(catalog, Criteria{Guests: 1, MaxPrice: 2000, Amenities: []string{"wifi", "pool"}}), 1)
}

func TestFilter_PropertyType(t *testing.T) {
	got := FilterProperties(fixtureCatalog(), Criteria{Guests: 1, MaxPrice: 2000, PropertyType: "villa"})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	// No type constraint matches all active types.
	got = FilterProperties(fixtureCatalog(), Criteria{Guests: 1, MaxPrice: 2000})
	assert.Len(t, got, 3)
}

func TestFilter_PreservesNewestFirstOrder(t *testing.T) {
	got := FilterProperties(fixtureCatalog(), Criteria{Guests: 1, MaxPrice: 2000})

	ids := make([]int64, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{3, 2, 1}, ids, "filter must preserve the newest-first catalog order")
}

func TestCriteria_CacheKeyCanonical(t *testing.T) {
	a := Criteria{Guests: 2, MaxPrice: 2000, Amenities: []string{"pool", "wifi"}}
	b := Criteria{Guests: 2, MaxPrice: 2000, Amenities: []string{"wifi", "pool"}}
	assert.Equal(t, a.CacheKey(), b.CacheKey(), "amenity order must not change the cache key")

	c := Criteria{Guests: 3, MaxPrice: 2000, Amenities: []string{"wifi", "pool"}}
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}
