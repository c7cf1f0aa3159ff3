package review

type CreateReviewRequest struct {
	PropertyID int64  `json:"property_id" binding:"required"`
	BookingID  int64  `json:"booking_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment    string `json:"comment"`
}
