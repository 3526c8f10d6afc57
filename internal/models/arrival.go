package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType enumerates how an arrival was paid for
type PaymentType string

const (
	PaymentTypeCash    PaymentType = "cash"
	PaymentTypePayable PaymentType = "payable"
)

// Valid reports whether the payment type is one of the known values
func (p PaymentType) Valid() bool {
	return p == PaymentTypeCash || p == PaymentTypePayable
}

// Arrival is a goods-receipt document: a header plus zero or more line items
// connecting it to catalog items.
type Arrival struct {
	ID           int           `json:"id"`
	PaymentType  PaymentType   `json:"payment_type"`
	SupplierID   int           `json:"supplier_id"`
	SupplierName string        `json:"supplier_name,omitempty"` // joined field
	ReceiptNo    int           `json:"receipt_no"`
	UserID       int           `json:"user_id"`
	Lines        []ItemArrival `json:"lines,omitempty"`
	IsActive     bool          `json:"is_active"`
	CreatedAt    time.Time     `json:"created_at"`
	ModifiedAt   time.Time     `json:"modified_at"`
}

// ItemArrival is an arrival line: one item, the received quantity, and the
// unit price as of receipt. The recorded price is historical context only;
// valuation reads the item's current cost price (see valuation package).
type ItemArrival struct {
	ID         int             `json:"id"`
	ArrivalID  int             `json:"arrival_id"`
	ItemID     int             `json:"item_id"`
	ItemName   string          `json:"item_name,omitempty"` // joined field
	Quantity   decimal.Decimal `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	ModifiedAt time.Time       `json:"modified_at"`
}

// ArrivalLineRequest is one line of a create-arrival request
type ArrivalLineRequest struct {
	ItemID   int             `json:"item_id" validate:"required"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CreateArrivalRequest represents the request body for creating an arrival.
// The header and all lines are persisted in a single transaction; if any
// line fails validation nothing is written.
type CreateArrivalRequest struct {
	PaymentType PaymentType          `json:"payment_type"`
	SupplierID  int                  `json:"supplier_id" validate:"required"`
	ReceiptNo   int                  `json:"receipt_no"`
	Lines       []ArrivalLineRequest `json:"lines"`
}

// ArrivalFilter is the typed filter for arrival range queries. Start and End
// are STRICT bounds on created_at: created_at > Start AND created_at < End.
// This replaces the raw-query surface of the legacy system.
type ArrivalFilter struct {
	SupplierID  int         `json:"supplier_id"`
	Start       *time.Time  `json:"start"`
	End         *time.Time  `json:"end"`
	PaymentType PaymentType `json:"payment_type"`
	Limit       int         `json:"limit"`
	Offset      int         `json:"offset"`
}
