package domain

import "time"

// User roles.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is a storefront account. PK: email (lowercased).
type User struct {
	Email        string     `json:"email" dynamodbav:"email"`
	UserID       string     `json:"userId" dynamodbav:"user_id"`
	Name         string     `json:"name" dynamodbav:"name"`
	PasswordHash string     `json:"-" dynamodbav:"password_hash"`
	Provider     string     `json:"provider" dynamodbav:"provider"` // "password"
	Role         string     `json:"role" dynamodbav:"role"`
	CreatedAt    time.Time  `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" dynamodbav:"updated_at"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" dynamodbav:"last_login_at,omitempty"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SafeUser is the wire representation of a User with credentials stripped.
type SafeUser struct {
	UserID      string     `json:"userId"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Provider    string     `json:"provider"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// Sanitize strips credential material from a user for API responses.
func (u *User) Sanitize() *SafeUser {
	if u == nil {
		return nil
	}
	return &SafeUser{
		UserID:      u.UserID,
		Email:       u.Email,
		Name:        u.Name,
		Provider:    u.Provider,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
