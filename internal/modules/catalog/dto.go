package catalog

type CreatePropertyRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Location      string   `json:"location" binding:"required"`
	PricePerNight float64  `json:"price_per_night" binding:"gte=0"`
	MaxGuests     int      `json:"max_guests" binding:"required,gte=1"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	PropertyType  string   `json:"property_type" binding:"required"`
	Amenities     []string `json:"amenities"`
	Photos        []string `json:"photos"`
}

type UpdatePropertyRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Location      *string   `json:"location"`
	PricePerNight *float64  `json:"price_per_night"`
	MaxGuests     *int      `json:"max_guests"`
	Bedrooms      *int      `json:"bedrooms"`
	Bathrooms     *int      `json:"bathrooms"`
	PropertyType  *string   `json:"property_type"`
	Amenities     *[]string `json:"amenities"`
	Photos        *[]string `json:"photos"`
}
