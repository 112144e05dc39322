package domain

import "time"

// Product is a catalog entry. PK: product_id.
type Product struct {
	ProductID   string    `json:"id" dynamodbav:"product_id"`
	Name        string    `json:"name" dynamodbav:"name"`
	Description string    `json:"description" dynamodbav:"description"`
	Price       float64   `json:"price" dynamodbav:"price"`
	Category    string    `json:"category" dynamodbav:"category"`
	Image       string    `json:"image" dynamodbav:"image"`
	Images      []string  `json:"images" dynamodbav:"images"`
	Stock       int       `json:"stock" dynamodbav:"stock"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" dynamodbav:"updated_at,omitempty"`
}

// ProductPayload is the create/update request body. Image fields accept
// either an array or a comma-separated string; normalisation happens in
// the product service.
type ProductPayload struct {
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	Price       float64     `json:"price" validate:"required,gt=0"`
	Category    string      `json:"category" validate:"required"`
	Image       string      `json:"image"`
	Images      interface{} `json:"images"`
	Gallery     interface{} `json:"gallery"`
	Stock       int         `json:"stock"`
}
