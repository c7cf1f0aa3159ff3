package review

import "errors"

var (
	ErrNotYourBooking   = errors.New("booking belongs to another user")
	ErrStayNotCompleted = errors.New("stay is not completed yet")
	ErrAlreadyReviewed  = errors.New("booking already has a review")
	ErrWrongProperty    = errors.New("booking is for a different property")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)
