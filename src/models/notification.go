package models

import "time"

type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Month     string    `json:"month"`
	Year      int       `json:"year"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
