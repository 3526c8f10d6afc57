package models

import "time"

type Supplier struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// CreateSupplierRequest represents the request body for creating a supplier
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"max=200"`
	Phone   string `json:"phone" validate:"max=200"`
}

// UpdateSupplierRequest represents the request body for updating a supplier
type UpdateSupplierRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Address  string `json:"address" validate:"max=200"`
	Phone    string `json:"phone" validate:"max=200"`
	IsActive *bool  `json:"is_active"`
}
