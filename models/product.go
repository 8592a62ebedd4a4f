package models

import "time"

type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductInput is what the admin supplies when adding a product;
// the catalog assigns the id and timestamp.
type ProductInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock" binding:"min=0"`
	Rating      float64 `json:"rating" binding:"min=0,max=5"`
	Reviews     int     `json:"reviews" binding:"min=0"`
}
