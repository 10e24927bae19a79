package model

import "time"

// Contact is a lead captured through the public contact form.
type Contact struct {
	ID        int       `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactForm is the public contact submission. The landing page form posts
// camelCase keys; the admin edit form uses snake_case (ContactEditForm).
type ContactForm struct {
	FullName string `form:"fullName" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Mobile   string `form:"mobile" binding:"required"`
	City     string `form:"city" binding:"required"`
}

// ContactEditForm is the admin-panel edit payload for a contact.
type ContactEditForm struct {
	FullName string `form:"full_name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Mobile   string `form:"mobile" binding:"required"`
	City     string `form:"city" binding:"required"`
}
