package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is a goods-dispatch document: stock sent out to a supplier.
type Transfer struct {
	ID           int            `json:"id"`
	ToSupplierID int            `json:"to_supplier_id"`
	SupplierName string         `json:"supplier_name,omitempty"` // joined field
	UserID       int            `json:"user_id"`
	DeliveredBy  string         `json:"delivered_by"`
	Lines        []ItemTransfer `json:"lines,omitempty"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	ModifiedAt   time.Time      `json:"modified_at"`
}

// ItemTransfer is a transfer line. Unlike arrival lines it carries no price
// of its own; valuation always uses the item's current cost price.
type ItemTransfer struct {
	ID         int             `json:"id"`
	TransferID int             `json:"transfer_id"`
	ItemID     int             `json:"item_id"`
	ItemName   string          `json:"item_name,omitempty"` // joined field
	Quantity   decimal.Decimal `json:"quantity"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	ModifiedAt time.Time       `json:"modified_at"`
}

// TransferLineRequest is one line of a create-transfer request
type TransferLineRequest struct {
	ItemID   int             `json:"item_id" validate:"required"`
	Quantity decimal.Decimal `json:"quantity"`
}

// CreateTransferRequest represents the request body for creating a transfer
type CreateTransferRequest struct {
	ToSupplierID int                   `json:"to_supplier_id" validate:"required"`
	DeliveredBy  string                `json:"delivered_by" validate:"max=255"`
	Lines        []TransferLineRequest `json:"lines"`
}

// TransferFilter is the typed filter for transfer listings
type TransferFilter struct {
	ToSupplierID int        `json:"to_supplier_id"`
	Start        *time.Time `json:"start"`
	End          *time.Time `json:"end"`
	Limit        int        `json:"limit"`
	Offset       int        `json:"offset"`
}
