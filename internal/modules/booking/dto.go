package booking

import "stayhub/internal/domain"

// CreateBookingRequest is the submission payload. TotalAmount is the price
// the client displayed; the server recomputes and stores its own total.
type CreateBookingRequest struct {
	PropertyID  int64            `json:"propertyId" binding:"required"`
	CheckIn     string           `json:"checkIn"`
	CheckOut    string           `json:"checkOut"`
	Guests      int              `json:"guests"`
	TotalAmount float64          `json:"totalAmount"`
	GuestInfo   domain.GuestInfo `json:"guestInfo"`
}
