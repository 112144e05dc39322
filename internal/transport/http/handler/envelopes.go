package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OtpSentEnvelope wraps a successful send-OTP response.
type OtpSentEnvelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ExpiresIn int    `json:"expiresIn"`
}

// AuthEnvelope wraps register/login responses.
type AuthEnvelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Token   string           `json:"token,omitempty"`
	User    *domain.SafeUser `json:"user,omitempty"`
}

// ProductsEnvelope wraps catalog list responses.
type ProductsEnvelope struct {
	Success  bool             `json:"success"`
	Count    int              `json:"count"`
	Products []domain.Product `json:"products"`
}

// ProductEnvelope wraps single-product responses.
type ProductEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Product *domain.Product `json:"product,omitempty"`
}

// CartEnvelope wraps cart contents responses.
type CartEnvelope struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Items   []domain.CartItem `json:"items"`
}

// CartItemEnvelope wraps a single cart mutation response.
type CartItemEnvelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Item    *domain.CartItem `json:"item,omitempty"`
}

// OrdersEnvelope wraps order list responses.
type OrdersEnvelope struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Orders  []domain.Order `json:"orders"`
}

// OrderEnvelope wraps a single order response.
type OrderEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Order   *domain.Order `json:"order,omitempty"`
}

// PaymentEnvelope wraps payment responses.
type PaymentEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Payment *domain.Payment `json:"payment,omitempty"`
}

// ChatEnvelope wraps assistant responses.
type ChatEnvelope struct {
	Success bool `json:"success"`
	*domain.ChatResult
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the standard failure envelope. The user-facing text
// always travels in message; error is reserved for diagnostic detail.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Success: false, Message: msg})
}
