package entity

import "time"

// Notification represents a user-facing message stored on the backend
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func (Notification) Collection() string {
	return "notifications"
}
