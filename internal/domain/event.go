package domain

import "time"

// Event is a fire-and-forget analytics record keyed by session. It feeds
// nothing back into booking or search logic.
type Event struct {
	ID         int64     `json:"id"`
	EventID    string    `json:"event_id"`
	SessionID  string    `json:"session_id"`
	UserID     *int64    `json:"user_id,omitempty"`
	Name       string    `json:"name"`
	Props      string    `json:"props,omitempty" gorm:"type:text"`
	OccurredAt time.Time `json:"occurred_at"`
}
