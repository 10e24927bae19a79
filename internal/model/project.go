package model

import "time"

// Project is a portfolio entry shown on the landing page.
type Project struct {
	ID          int       `json:"id"`
	ImageURL    string    `json:"image_url"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectForm is the payload for adding or editing a project.
type ProjectForm struct {
	ImageURL    string `form:"image_url" binding:"required"`
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
}
