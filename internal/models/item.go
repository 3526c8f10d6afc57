package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is the catalog unit referenced by every ledger line. Prices are
// fixed-point NUMERIC(15,3); an unset price is represented explicitly via
// decimal.NullDecimal rather than a zero value, so valuation can tell
// "free" apart from "never priced".
type Item struct {
	ID            int                 `json:"id"`
	Name          string              `json:"name"`
	SellingPrice  decimal.NullDecimal `json:"selling_price"`
	OriginalPrice decimal.NullDecimal `json:"original_price"`
	CategoryID    int                 `json:"category_id"`
	CategoryName  string              `json:"category_name,omitempty"` // joined field
	Stock         int                 `json:"stock"`
	IsActive      bool                `json:"is_active"`
	CreatedAt     time.Time           `json:"created_at"`
	ModifiedAt    time.Time           `json:"modified_at"`
}

// CreateItemRequest represents the request body for creating an item
type CreateItemRequest struct {
	Name          string              `json:"name" validate:"required,max=100"`
	SellingPrice  decimal.NullDecimal `json:"selling_price"`
	OriginalPrice decimal.NullDecimal `json:"original_price"`
	CategoryID    int                 `json:"category_id" validate:"required"`
	Stock         int                 `json:"stock"`
}

// UpdateItemRequest represents the request body for updating an item
type UpdateItemRequest struct {
	Name          string              `json:"name" validate:"required,max=100"`
	SellingPrice  decimal.NullDecimal `json:"selling_price"`
	OriginalPrice decimal.NullDecimal `json:"original_price"`
	CategoryID    int                 `json:"category_id" validate:"required"`
	IsActive      *bool               `json:"is_active"`
}
