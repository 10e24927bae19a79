package model

import "time"

// Subscriber is a newsletter signup. Email is unique across subscribers.
type Subscriber struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SubscribeForm is the payload for the public subscribe form and the
// admin-panel subscriber edit form.
type SubscribeForm struct {
	Email string `form:"email" binding:"required"`
}
