package domain

import "time"

// Order statuses.
const (
	OrderStatusPending = "pending"
)

// Order lives in the relational store, unlike the rest of the catalog.
type Order struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateOrderRequest struct {
	UserID      string  `json:"userId" validate:"required"`
	TotalAmount float64 `json:"totalAmount" validate:"required,gt=0"`
}
