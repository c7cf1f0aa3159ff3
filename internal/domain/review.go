package domain

import "time"

type Review struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id" validate:"required"`
	UserID     int64     `json:"user_id"`
	BookingID  *int64    `json:"booking_id,omitempty"`
	Rating     int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
