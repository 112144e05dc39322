package domain

import "time"

// CartItem is one product in a user's cart.
// PK: user_id, SK: product_id. Adding the same product again overwrites
// the quantity rather than accumulating it.
type CartItem struct {
	UserID    string    `json:"userId" dynamodbav:"user_id"`
	ProductID string    `json:"productId" dynamodbav:"product_id"`
	Quantity  int       `json:"quantity" dynamodbav:"quantity"`
	AddedAt   time.Time `json:"addedAt" dynamodbav:"added_at"`
}

type AddCartItemRequest struct {
	UserID    string `json:"userId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}
