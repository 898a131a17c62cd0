package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// ProductStatus represents a product listing state
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusSold     ProductStatus = "sold"
)

// Product represents a marketplace listing
type Product struct {
	ID           uint          `json:"id"`
	SellerID     uint          `json:"seller_id"`
	CategoryID   uint          `json:"category_id"`
	CategoryName string        `json:"category_name,omitempty"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Price        float64       `json:"price"`
	ImageURL     null.String   `json:"image_url,omitempty"`
	Status       ProductStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Category represents a product category
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CreateProductInput represents input for creating a listing
type CreateProductInput struct {
	CategoryID  uint    `json:"category_id" binding:"required"`
	Title       string  `json:"title" binding:"required,min=3,max=255"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    *string `json:"image_url"`
}

// UpdateProductInput represents a partial listing update
type UpdateProductInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Status      *string  `json:"status"`
}

// ProductFilter narrows product listings
type ProductFilter struct {
	CategoryID   uint
	CategorySlug string
	Limit        int
	Offset       int
}
