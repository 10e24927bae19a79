package model

import "time"

// Client is a testimonial entry shown on the landing page.
type Client struct {
	ID          int       `json:"id"`
	ImageURL    string    `json:"image_url"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Designation string    `json:"designation"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClientForm is the payload for adding or editing a client.
type ClientForm struct {
	ImageURL    string `form:"image_url" binding:"required"`
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
	Designation string `form:"designation" binding:"required"`
}
